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

// BasicClient calls the basic remote analysis service. Its contract is a
// reduced payload, so responses are enriched to the full result shape with
// neutral cognitive and trajectory defaults before they reach callers.
type BasicClient struct {
	baseURL string
	timeout time.Duration
	hc      *http.Client
}

// NewBasicClient constructs a client for the basic tier.
func NewBasicClient(baseURL string, timeout time.Duration) *BasicClient {
	return &BasicClient{
		baseURL: baseURL,
		timeout: timeout,
		hc:      newHTTPClient(timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *BasicClient) Name() string { return "remote-basic" }

// Provenance reports the tier tag stamped on successful results.
func (c *BasicClient) Provenance() domain.Provenance { return domain.ProvenanceRemoteBasic }

type basicRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	AnalysisLevel  string `json:"analysis_level"`
}

type basicResponse struct {
	MatchScore      float64  `json:"match_score"`
	MatchedSkills   []string `json:"matched_skills"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// TryAnalyze posts the reduced request and lifts the response into a full
// analysis result. Missing narrative fields get serviceable defaults rather
// than failing the tier.
func (c *BasicClient) TryAnalyze(ctx domain.Context, in domain.AnalyzeInput) (domain.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	defer func() { observability.ObserveTierDuration("basic", time.Since(start)) }()

	body, err := json.Marshal(basicRequest{
		ResumeText:     in.ResumeText,
		JobDescription: in.JobText,
		AnalysisLevel:  "basic",
	})
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: marshal request: %v", domain.ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/match", bytes.NewReader(body))
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
		slog.Warn("basic tier returned non-OK status", slog.Int("status", resp.StatusCode))
		return domain.AnalysisResult{}, fmt.Errorf("%w: status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	}

	var out basicResponse
	dec := json.NewDecoder(http.MaxBytesReader(nil, resp.Body, maxResponseBytes))
	if err := dec.Decode(&out); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: decode response: %v", domain.ErrRemoteMalformed, err)
	}
	if out.MatchScore < 0 || out.MatchScore > 100 {
		return domain.AnalysisResult{}, fmt.Errorf("%w: match_score=%v", domain.ErrRemoteMalformed, out.MatchScore)
	}

	return enrichBasic(out), nil
}

// enrichBasic lifts a reduced basic-tier response into the full result shape.
func enrichBasic(out basicResponse) domain.AnalysisResult {
	score := int(math.Round(out.MatchScore))
	summary := out.Summary
	if summary == "" {
		summary = fmt.Sprintf("The resume matches the position at %d%%.", score)
	}
	return domain.AnalysisResult{
		Summary:         summary,
		Strengths:       out.Strengths,
		Weaknesses:      out.Weaknesses,
		Recommendations: out.Recommendations,
		FitScore:        score,
		FitAnalysis:     fitAnalysisFor(score),
		Provenance:      domain.ProvenanceRemoteBasic,
		Breakdown: domain.FitScoreBreakdown{
			SkillScore:     score,
			CompositeScore: score,
		},
		ATSKeywords: out.MatchedSkills,
		Cognitive:   domain.DefaultCognitiveProfile(),
		Trajectory:  domain.DefaultCareerTrajectory(),
	}
}

func fitAnalysisFor(score int) string {
	switch {
	case score >= 85:
		return "Excellent fit: the profile aligns strongly with the position."
	case score >= 70:
		return "Good fit: the profile covers most of the position requirements."
	case score >= 60:
		return "Moderate fit: the profile covers part of the position requirements."
	default:
		return "Limited fit: the profile diverges from the position requirements."
	}
}
