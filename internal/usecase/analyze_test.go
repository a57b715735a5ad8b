package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/lexicon"
	"github.com/fairyhunter13/resume-fit-engine/internal/service/score"
	"github.com/fairyhunter13/resume-fit-engine/internal/usecase"
)

type fakeProvider struct {
	name       string
	provenance domain.Provenance
	result     domain.AnalysisResult
	err        error
	calls      int
}

func (f *fakeProvider) Name() string                  { return f.name }
func (f *fakeProvider) Provenance() domain.Provenance { return f.provenance }
func (f *fakeProvider) TryAnalyze(_ domain.Context, _ domain.AnalyzeInput) (domain.AnalysisResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeExtractor struct {
	text string
	err  error
}

func (f fakeExtractor) ExtractPath(_ domain.Context, _, _ string) (string, error) {
	return f.text, f.err
}

func localEngine(t *testing.T) *usecase.LocalEngine {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	return usecase.NewLocalEngine(lex, score.DefaultWeights())
}

func TestAnalyzeFit_FirstTierWins(t *testing.T) {
	t.Parallel()
	comprehensive := &fakeProvider{
		name:       "remote-comprehensive",
		provenance: domain.ProvenanceRemoteComprehensive,
		result:     domain.AnalysisResult{Summary: "full", FitScore: 88},
	}
	basic := &fakeProvider{name: "remote-basic", provenance: domain.ProvenanceRemoteBasic}

	svc := usecase.NewAnalyzeService(nil, comprehensive, basic, localEngine(t))
	res := svc.AnalyzeFit(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})

	assert.Equal(t, domain.ProvenanceRemoteComprehensive, res.Provenance)
	assert.Equal(t, 88, res.FitScore)
	assert.Equal(t, 1, comprehensive.calls)
	assert.Zero(t, basic.calls, "later tiers must not run after a success")
}

func TestAnalyzeFit_FallbackOrdering(t *testing.T) {
	t.Parallel()
	comprehensive := &fakeProvider{
		name:       "remote-comprehensive",
		provenance: domain.ProvenanceRemoteComprehensive,
		err:        fmt.Errorf("%w: deadline", domain.ErrRemoteTimeout),
	}
	basic := &fakeProvider{
		name:       "remote-basic",
		provenance: domain.ProvenanceRemoteBasic,
		result: domain.AnalysisResult{
			Summary: "basic", FitScore: 64,
			Strengths:  []string{"s"},
			Weaknesses: []string{"w"},
			Cognitive:  domain.DefaultCognitiveProfile(),
			Trajectory: domain.DefaultCareerTrajectory(),
		},
	}

	svc := usecase.NewAnalyzeService(nil, comprehensive, basic, localEngine(t))
	res := svc.AnalyzeFit(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})

	assert.Equal(t, domain.ProvenanceRemoteBasic, res.Provenance)
	assert.Equal(t, 1, comprehensive.calls, "no intra-tier retry")
	assert.Equal(t, 1, basic.calls)
	assert.NotEmpty(t, res.Strengths)
	assert.NotZero(t, res.Cognitive.OverallScore)
	assert.NotEmpty(t, res.Trajectory.CareerPath)
}

func TestAnalyzeFit_TotalFallback(t *testing.T) {
	t.Parallel()
	comprehensive := &fakeProvider{
		name: "remote-comprehensive", provenance: domain.ProvenanceRemoteComprehensive,
		err: fmt.Errorf("%w: deadline", domain.ErrRemoteTimeout),
	}
	basic := &fakeProvider{
		name: "remote-basic", provenance: domain.ProvenanceRemoteBasic,
		err: fmt.Errorf("%w: bad payload", domain.ErrRemoteMalformed),
	}

	svc := usecase.NewAnalyzeService(nil, comprehensive, basic, localEngine(t))
	res := svc.AnalyzeFit(context.Background(), domain.AnalyzeInput{
		ResumeText: "Developer with 5 years of experience in React and Docker.",
		JobText:    "React developer position.",
	})

	assert.Equal(t, domain.ProvenanceLocal, res.Provenance)
	assert.NotEmpty(t, res.Summary)
	assert.GreaterOrEqual(t, res.FitScore, 0)
	assert.LessOrEqual(t, res.FitScore, 100)
}

func TestAnalyzeFit_EmptyInputGraceful(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(nil, localEngine(t))
	res := svc.AnalyzeFit(context.Background(), domain.AnalyzeInput{})

	assert.Equal(t, domain.ProvenanceLocal, res.Provenance)
	assert.NotEmpty(t, res.Strengths)
	assert.NotEmpty(t, res.Weaknesses)
	assert.GreaterOrEqual(t, res.FitScore, 0)
	assert.LessOrEqual(t, res.FitScore, 100)
}

func TestAnalyzeFit_LocalDeterministic(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(nil, localEngine(t))
	in := domain.AnalyzeInput{
		ResumeText: "Engineer with 3 years of experience in Python, Docker and teamwork.",
		JobText:    "Python engineer, Docker, teamwork required.",
	}
	assert.Equal(t,
		svc.AnalyzeFit(context.Background(), in),
		svc.AnalyzeFit(context.Background(), in))
}

func TestAnalyzeFit_NoProvidersStillTotal(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(nil)
	res := svc.AnalyzeFit(context.Background(), domain.AnalyzeInput{ResumeText: "r"})
	assert.Equal(t, domain.ProvenanceLocal, res.Provenance)
	assert.NotEmpty(t, res.Strengths)
	assert.NotEmpty(t, res.Weaknesses)
}

func TestAnalyzeDocument_ExtractionSuccess(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(
		fakeExtractor{text: "Developer with 5 years of experience in React."},
		localEngine(t))
	res := svc.AnalyzeDocument(context.Background(), "cv.pdf", "/tmp/cv.pdf", domain.AnalyzeInput{JobText: "React developer"})
	assert.Equal(t, domain.ProvenanceLocal, res.Provenance)
	assert.Contains(t, res.Summary, "5 years")
}

func TestAnalyzeDocument_ExtractionFailureDegrades(t *testing.T) {
	t.Parallel()
	svc := usecase.NewAnalyzeService(
		fakeExtractor{err: fmt.Errorf("%w: tika down", domain.ErrExtractionUnavailable)},
		localEngine(t))
	res := svc.AnalyzeDocument(context.Background(), "cv.pdf", "/tmp/cv.pdf", domain.AnalyzeInput{JobText: "React developer"})
	assert.Equal(t, domain.ProvenanceLocal, res.Provenance)
	assert.NotEmpty(t, res.Weaknesses)
}
