package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-fit-engine/internal/adapter/remote"
	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
)

func errorsIsAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

func TestBasic_SuccessEnriched(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/match", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "basic", req["analysis_level"])
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"match_score":    67.6,
			"matched_skills": []string{"react", "docker"},
			"strengths":      []string{"solid frontend background"},
			"weaknesses":     []string{"no cloud exposure"},
		})
	}))
	defer srv.Close()

	c := remote.NewBasicClient(srv.URL, 5*time.Second)
	res, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})
	require.NoError(t, err)

	assert.Equal(t, 68, res.FitScore)
	assert.Equal(t, domain.ProvenanceRemoteBasic, res.Provenance)
	assert.Equal(t, []string{"react", "docker"}, res.ATSKeywords)
	// reduced responses are lifted to the full result shape
	assert.NotEmpty(t, res.Summary)
	assert.NotEmpty(t, res.FitAnalysis)
	assert.Equal(t, 68, res.Breakdown.CompositeScore)
	assert.Equal(t, domain.DefaultCognitiveProfile(), res.Cognitive)
	assert.Equal(t, domain.DefaultCareerTrajectory(), res.Trajectory)
}

func TestBasic_MalformedScore(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"match_score":-3}`))
	}))
	defer srv.Close()

	c := remote.NewBasicClient(srv.URL, 5*time.Second)
	_, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})
	require.ErrorIs(t, err, domain.ErrRemoteMalformed)
}

func TestBasic_ServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := remote.NewBasicClient(srv.URL, 5*time.Second)
	_, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
}

func TestBasic_Timeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := remote.NewBasicClient(srv.URL, 50*time.Millisecond)
	_, err := c.TryAnalyze(context.Background(), domain.AnalyzeInput{ResumeText: "r", JobText: "j"})
	require.Error(t, err)
	assert.True(t,
		errorsIsAny(err, domain.ErrRemoteTimeout, domain.ErrRemoteUnavailable),
		"got %v", err)
}
