// Command server starts the resume fit scoring HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpserver "github.com/fairyhunter13/resume-fit-engine/internal/adapter/httpserver"
	"github.com/fairyhunter13/resume-fit-engine/internal/adapter/remote"
	tikaext "github.com/fairyhunter13/resume-fit-engine/internal/adapter/textextractor/tika"
	"github.com/fairyhunter13/resume-fit-engine/internal/app"
	"github.com/fairyhunter13/resume-fit-engine/internal/config"
	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/lexicon"
	"github.com/fairyhunter13/resume-fit-engine/internal/observability"
	"github.com/fairyhunter13/resume-fit-engine/internal/service/score"
	"github.com/fairyhunter13/resume-fit-engine/internal/usecase"
)

func main() {
	// Best-effort .env for local development; real deployments inject env.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	lex, err := lexicon.Load(cfg.LexiconPath)
	if err != nil {
		slog.Error("lexicon load failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Provider chain: comprehensive remote, basic remote, then the local
	// engine as the always-available terminal tier.
	var providers []domain.Provider
	if cfg.ComprehensiveURL != "" {
		providers = append(providers, remote.NewComprehensiveClient(cfg.ComprehensiveURL, cfg.ComprehensiveTimeout))
	}
	if cfg.BasicURL != "" {
		providers = append(providers, remote.NewBasicClient(cfg.BasicURL, cfg.BasicTimeout))
	}
	providers = append(providers, usecase.NewLocalEngine(lex, score.DefaultWeights()))
	slog.Info("scoring chain assembled", slog.Int("tiers", len(providers)))

	ext := tikaext.New(cfg.TikaURL,
		tikaext.WithTimeout(cfg.TikaTimeout),
		tikaext.WithRetryMaxElapsed(cfg.TikaRetryMaxElapse))

	analyzeSvc := usecase.NewAnalyzeService(ext, providers...)

	srv := httpserver.NewServer(cfg, analyzeSvc, app.BuildTikaCheck(cfg))
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
