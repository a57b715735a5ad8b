package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-fit-engine/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 60*time.Second, cfg.ComprehensiveTimeout)
	assert.Equal(t, 30*time.Second, cfg.BasicTimeout)
	assert.Equal(t, "resume-fit-engine", cfg.OTELServiceName)
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.IsProd())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("COMPREHENSIVE_SCORING_URL", "http://scoring:8000")
	t.Setenv("COMPREHENSIVE_SCORING_TIMEOUT", "45s")
	t.Setenv("RATE_LIMIT_PER_MIN", "5")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "http://scoring:8000", cfg.ComprehensiveURL)
	assert.Equal(t, 45*time.Second, cfg.ComprehensiveTimeout)
	assert.Equal(t, 5, cfg.RateLimitPerMin)
	assert.True(t, cfg.IsProd())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	_, err := config.Load()
	require.Error(t, err)
}
