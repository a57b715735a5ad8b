package usecase

import (
	"log/slog"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/observability"
	"github.com/fairyhunter13/resume-fit-engine/pkg/textx"
)

// AnalyzeService is the fallback orchestrator: it walks the ordered provider
// tiers until one yields a result. The last provider must be a LocalEngine
// so the contract stays total — AnalyzeFit always returns a well-formed
// result for any string inputs and never raises to the caller.
type AnalyzeService struct {
	Providers []domain.Provider
	Extractor domain.TextExtractor
}

// NewAnalyzeService constructs the orchestrator. Providers are attempted in
// the order given, each at most once per call.
func NewAnalyzeService(extractor domain.TextExtractor, providers ...domain.Provider) AnalyzeService {
	return AnalyzeService{Providers: providers, Extractor: extractor}
}

// AnalyzeFit runs the tiered analysis. Remote tier failures (timeout,
// non-success, malformed payload) advance to the next tier; no tier is
// retried. The serving tier is logged and tagged on the result.
func (s AnalyzeService) AnalyzeFit(ctx domain.Context, in domain.AnalyzeInput) domain.AnalysisResult {
	lg := observability.LoggerFromContext(ctx)
	in.ResumeText = textx.SanitizeText(in.ResumeText)
	in.JobText = textx.SanitizeText(in.JobText)

	for _, p := range s.Providers {
		res, err := p.TryAnalyze(ctx, in)
		observability.RecordTierAttempt(p.Name(), err == nil)
		if err != nil {
			lg.Warn("scoring tier failed, advancing",
				slog.String("tier", p.Name()),
				slog.Any("error", err))
			continue
		}
		res.Provenance = p.Provenance()
		lg.Info("analysis served",
			slog.String("tier", p.Name()),
			slog.String("provenance", string(res.Provenance)),
			slog.Int("fit_score", res.FitScore))
		observability.RecordFitScore(string(res.Provenance), res.FitScore)
		return res
	}

	// Unreachable when a LocalEngine terminates the chain; kept so a
	// misconfigured provider list still honors the total contract.
	lg.Error("no scoring provider configured, returning empty local result")
	return domain.AnalysisResult{
		Summary:         "Analysis unavailable.",
		Strengths:       []string{"Profile received"},
		Weaknesses:      []string{"Analysis could not be completed"},
		Recommendations: []string{"Retry the analysis later"},
		Provenance:      domain.ProvenanceLocal,
		Cognitive:       domain.DefaultCognitiveProfile(),
		Trajectory:      domain.DefaultCareerTrajectory(),
	}
}

// AnalyzeDocument resolves a document reference through the text source and
// analyzes the extracted text. Extraction failure degrades to empty resume
// text instead of propagating — the result is then a low-confidence local
// estimate rather than an error.
func (s AnalyzeService) AnalyzeDocument(ctx domain.Context, fileName, path string, in domain.AnalyzeInput) domain.AnalysisResult {
	lg := observability.LoggerFromContext(ctx)
	if s.Extractor == nil {
		lg.Warn("no text extractor configured, analyzing empty resume text")
		in.ResumeText = ""
		return s.AnalyzeFit(ctx, in)
	}
	text, err := s.Extractor.ExtractPath(ctx, fileName, path)
	if err != nil {
		lg.Warn("text extraction failed, degrading to empty resume text",
			slog.String("file", fileName),
			slog.Any("error", err))
		text = ""
	}
	in.ResumeText = text
	return s.AnalyzeFit(ctx, in)
}
