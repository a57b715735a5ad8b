package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-fit-engine/internal/adapter/remote"
	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
)

func comprehensivePayload() map[string]any {
	return map[string]any{
		"summary":         "Strong fit for the role.",
		"strengths":       []string{"react expertise"},
		"weaknesses":      []string{"no k8s"},
		"recommendations": []string{"add metrics"},
		"fit_score":       81.4,
		"fit_analysis":    "Good match.",
		"breakdown":       map[string]any{"skill_score": 80, "composite_score": 81},
		"primary_domain":  "technology",
		"key_phrases":     []string{"led a team"},
		"ats_keywords":    []string{"react"},
	}
}

func TestComprehensive_Success(t *testing.T) {
	t.Parallel()
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/analyze", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(comprehensivePayload())
	}))
	defer srv.Close()

	c := remote.NewComprehensiveClient(srv.URL, 5*time.Second)
	res, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{
		ResumeText:     "resume",
		JobText:        "job",
		JobMetadata:    &domain.JobMetadata{Type: "full-time"},
		RequiredSkills: []string{"react"},
	})
	require.NoError(t, err)

	assert.Equal(t, "comprehensive", gotReq["analysis_level"])
	assert.Equal(t, "resume", gotReq["resume_text"])
	assert.Equal(t, "job", gotReq["job_description"])

	assert.Equal(t, 81, res.FitScore)
	assert.Equal(t, domain.ProvenanceRemoteComprehensive, res.Provenance)
	assert.Equal(t, "Strong fit for the role.", res.Summary)
	assert.Equal(t, 80, res.Breakdown.SkillScore)
	// missing soft-signal blocks are defaulted, not left zero
	assert.NotZero(t, res.Cognitive.OverallScore)
	assert.NotEmpty(t, res.Trajectory.CareerPath)
}

func TestComprehensive_NonOKStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := remote.NewComprehensiveClient(srv.URL, 5*time.Second)
	_, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestComprehensive_MalformedPayload(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"not json":          "{{{",
		"out of range":      `{"summary":"s","fit_score":250}`,
		"missing narrative": `{"fit_score":50}`,
	}
	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			c := remote.NewComprehensiveClient(srv.URL, 5*time.Second)
			_, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})
			require.ErrorIs(t, err, domain.ErrRemoteMalformed)
		})
	}
}

func TestComprehensive_Timeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := remote.NewComprehensiveClient(srv.URL, 50*time.Millisecond)
	_, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})
	require.Error(t, err)
	assert.True(t,
		errorsIsAny(err, domain.ErrRemoteTimeout, domain.ErrRemoteUnavailable),
		"got %v", err)
}

func TestComprehensive_Unreachable(t *testing.T) {
	t.Parallel()
	c := remote.NewComprehensiveClient("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}
