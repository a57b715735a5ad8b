package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/observability"
)

// ComprehensiveClient calls the comprehensive remote analysis service. It is
// the most detailed and slowest tier, so callers give it the longest deadline.
type ComprehensiveClient struct {
	baseURL string
	timeout time.Duration
	hc      *http.Client
}

// NewComprehensiveClient constructs a client for the comprehensive tier.
func NewComprehensiveClient(baseURL string, timeout time.Duration) *ComprehensiveClient {
	return &ComprehensiveClient{
		baseURL: baseURL,
		timeout: timeout,
		hc:      newHTTPClient(timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *ComprehensiveClient) Name() string { return "remote-comprehensive" }

// Provenance reports the tier tag stamped on successful results.
func (c *ComprehensiveClient) Provenance() domain.Provenance {
	return domain.ProvenanceRemoteComprehensive
}

type comprehensiveRequest struct {
	ResumeText     string              `json:"resume_text"`
	JobDescription string              `json:"job_description"`
	JobMetadata    *domain.JobMetadata `json:"job_metadata,omitempty"`
	RequiredSkills []string            `json:"required_skills,omitempty"`
	AnalysisLevel  string              `json:"analysis_level"`
}

type comprehensiveResponse struct {
	Summary         string                   `json:"summary"`
	Strengths       []string                 `json:"strengths"`
	Weaknesses      []string                 `json:"weaknesses"`
	Recommendations []string                 `json:"recommendations"`
	FitScore        float64                  `json:"fit_score"`
	FitAnalysis     string                   `json:"fit_analysis"`
	Breakdown       domain.FitScoreBreakdown `json:"breakdown"`
	DomainScores    []domain.DomainScore     `json:"domain_scores"`
	PrimaryDomain   string                   `json:"primary_domain"`
	KeyPhrases      []string                 `json:"key_phrases"`
	Entities        domain.Entities          `json:"entities"`
	ATSKeywords     []string                 `json:"ats_keywords"`
	Cognitive       *domain.CognitiveProfile `json:"cognitive_profile"`
	Trajectory      *domain.CareerTrajectory `json:"career_trajectory"`
}

// TryAnalyze posts the analysis request and maps the full remote payload into
// a domain result. All failures come back as sentinel-wrapped errors so the
// orchestrator can fall through to the next tier.
func (c *ComprehensiveClient) TryAnalyze(ctx domain.Context, in domain.AnalyzeInput) (domain.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	defer func() { observability.ObserveTierDuration("comprehensive", time.Since(start)) }()

	body, err := json.Marshal(comprehensiveRequest{
		ResumeText:     in.ResumeText,
		JobDescription: in.JobText,
		JobMetadata:    in.JobMetadata,
		RequiredSkills: in.RequiredSkills,
		AnalysisLevel:  "comprehensive",
	})
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: marshal request: %v", domain.ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: build request: %v", domain.ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return domain.AnalysisResult{}, classifyTransportErr(err)
	}
	defer drainBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		slog.Warn("comprehensive tier returned non-OK status",
			slog.Int("status", resp.StatusCode))
		return domain.AnalysisResult{}, fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	var out comprehensiveResponse
	dec := json.NewDecoder(http.MaxBytesReader(nil, resp.Body, maxResponseBytes))
	if err := dec.Decode(&out); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: decode response: %v", domain.ErrRemoteMalformed, err)
	}
	if out.FitScore < 0 || out.FitScore > 100 || out.Summary == "" {
		return domain.AnalysisResult{}, fmt.Errorf("%w: fit_score=%v summary_empty=%v",
			domain.ErrRemoteMalformed, out.FitScore, out.Summary == "")
	}

	res := domain.AnalysisResult{
		Summary:         out.Summary,
		Strengths:       out.Strengths,
		Weaknesses:      out.Weaknesses,
		Recommendations: out.Recommendations,
		FitScore:        int(math.Round(out.FitScore)),
		FitAnalysis:     out.FitAnalysis,
		Provenance:      domain.ProvenanceRemoteComprehensive,
		Breakdown:       out.Breakdown,
		DomainScores:    out.DomainScores,
		PrimaryDomain:   out.PrimaryDomain,
		KeyPhrases:      out.KeyPhrases,
		Entities:        out.Entities,
		ATSKeywords:     out.ATSKeywords,
	}
	if out.Cognitive != nil {
		res.Cognitive = *out.Cognitive
	} else {
		res.Cognitive = domain.DefaultCognitiveProfile()
	}
	if out.Trajectory != nil {
		res.Trajectory = *out.Trajectory
	} else {
		res.Trajectory = domain.DefaultCareerTrajectory()
	}
	return res, nil
}
