// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// Remote scoring tiers. Empty URL disables the tier, leaving the local
	// engine as the only provider.
	ComprehensiveURL     string        `env:"COMPREHENSIVE_SCORING_URL"`
	ComprehensiveTimeout time.Duration `env:"COMPREHENSIVE_SCORING_TIMEOUT" envDefault:"60s"`
	BasicURL             string        `env:"BASIC_SCORING_URL"`
	BasicTimeout         time.Duration `env:"BASIC_SCORING_TIMEOUT" envDefault:"30s"`

	// TikaURL specifies the base URL for the Apache Tika server used for
	// document text extraction.
	TikaURL            string        `env:"TIKA_URL" envDefault:"http://tika:9998"`
	TikaTimeout        time.Duration `env:"TIKA_TIMEOUT" envDefault:"15s"`
	TikaRetryMaxElapse time.Duration `env:"TIKA_RETRY_MAX_ELAPSED" envDefault:"20s"`

	// LexiconPath optionally overrides the embedded keyword inventories.
	LexiconPath string `env:"LEXICON_PATH"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"resume-fit-engine"`

	MaxBodyBytes          int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"30"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"90s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }
