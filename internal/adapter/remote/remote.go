// Package remote implements scoring providers backed by remote analysis services.
//
// Two tiers exist: a comprehensive service that returns the full analysis
// payload, and a basic service with a reduced contract whose responses are
// enriched locally to the full result shape. Both map transport failures to
// domain sentinel errors so the orchestrator can cascade.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
)

const maxResponseBytes = 1 << 20

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// classifyTransportErr maps an http.Client error to a domain sentinel.
func classifyTransportErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrRemoteTimeout, err)
	}
	var ue interface{ Timeout() bool }
	if errors.As(err, &ue) && ue.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrRemoteTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
}

func drainBody(r io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, maxResponseBytes))
	_ = r.Close()
}
