// Package usecase contains application business logic services.
package usecase

import (
	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/lexicon"
	"github.com/fairyhunter13/resume-fit-engine/internal/service/classify"
	"github.com/fairyhunter13/resume-fit-engine/internal/service/extract"
	"github.com/fairyhunter13/resume-fit-engine/internal/service/insight"
	"github.com/fairyhunter13/resume-fit-engine/internal/service/score"
)

// LocalEngine is the terminal scoring tier: the pure extract → classify →
// score → generate pipeline. It performs no I/O and never fails on string
// inputs, which makes it the guaranteed last fallback.
type LocalEngine struct {
	extractor  *extract.Extractor
	classifier *classify.Classifier
	scorer     *score.Scorer
	generator  *insight.Generator
}

// NewLocalEngine wires the four pipeline stages over one shared lexicon.
func NewLocalEngine(lex *lexicon.Lexicon, w score.Weights) *LocalEngine {
	return &LocalEngine{
		extractor:  extract.New(lex),
		classifier: classify.New(lex),
		scorer:     score.New(lex, w),
		generator:  insight.New(lex),
	}
}

// Name implements domain.Provider.
func (e *LocalEngine) Name() string { return "local-engine" }

// Provenance implements domain.Provider.
func (e *LocalEngine) Provenance() domain.Provenance { return domain.ProvenanceLocal }

// TryAnalyze implements domain.Provider. The returned error is always nil;
// the pipeline degrades to low scores and generic insights instead of
// failing.
func (e *LocalEngine) TryAnalyze(_ domain.Context, in domain.AnalyzeInput) (domain.AnalysisResult, error) {
	return e.Analyze(in), nil
}

// Analyze runs the full local pipeline synchronously.
func (e *LocalEngine) Analyze(in domain.AnalyzeInput) domain.AnalysisResult {
	profile := e.extractor.Extract(in.ResumeText)
	domainScores := e.classifier.Classify(profile, in.ResumeText)
	atsKeywords := e.scorer.ATSKeywords(in.ResumeText, in.JobText, in.RequiredSkills)
	breakdown := e.scorer.Score(profile, domainScores, in.ResumeText, in.JobText, atsKeywords)

	res := e.generator.Generate(insight.Input{
		Profile:       profile,
		Breakdown:     breakdown,
		PrimaryDomain: classify.Primary(domainScores),
		ATSKeywords:   atsKeywords,
		ResumeText:    in.ResumeText,
	})
	res.FitScore = breakdown.CompositeScore
	res.Provenance = domain.ProvenanceLocal
	res.DomainScores = domainScores
	res.Cognitive = domain.DefaultCognitiveProfile()
	res.Trajectory = domain.DefaultCareerTrajectory()
	return res
}
