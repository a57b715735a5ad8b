// Package tika provides Apache Tika integration for text extraction.
//
// It extracts text content from various document formats including
// PDF, Word, and plain text files and returns clean plain text for
// the analysis pipeline.
package tika

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/pkg/textx"
)

// Client is a minimal Apache Tika HTTP client implementing domain.TextExtractor.
// It performs PUT /tika with Accept: text/plain to retrieve extracted text.
// See: https://tika.apache.org/server/ for API details.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	maxRetryTime  time.Duration
	allowAbsPaths bool
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRetryMaxElapsed bounds the total time spent retrying transient failures.
func WithRetryMaxElapsed(d time.Duration) Option {
	return func(c *Client) { c.maxRetryTime = d }
}

// WithAbsolutePaths permits reading files outside the temp and working
// directories. Intended for tests.
func WithAbsolutePaths() Option {
	return func(c *Client) { c.allowAbsPaths = true }
}

// New constructs a Tika client with a default timeout.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxRetryTime: 20 * time.Second,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ExtractPath uploads the file at path to the Tika server and returns plain
// text. Transient failures are retried with exponential backoff; exhaustion
// surfaces as domain.ErrExtractionUnavailable so callers can degrade.
func (c *Client) ExtractPath(ctx context.Context, fileName, path string) (string, error) {
	openPath, err := c.resolvePath(path)
	if err != nil {
		return "", err
	}
	// Read file contents up front so retries reuse the same bytes.
	bfile, err := os.ReadFile(openPath) //nolint:gosec // path constrained above
	if err != nil {
		return "", err
	}

	expo := backoff.NewExponentialBackOff()
	expo.MaxElapsedTime = c.maxRetryTime

	var result string
	op := func() error {
		text, err := c.extractOnce(ctx, fileName, bfile)
		if err != nil {
			return err
		}
		result = text
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(expo, ctx)); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionUnavailable, err)
	}
	return result, nil
}

func (c *Client) extractOnce(ctx context.Context, fileName string, content []byte) (string, error) {
	u := c.baseURL
	if u == "" {
		u = "http://localhost:9998"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u+"/tika", bytes.NewReader(content))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Accept", "text/plain")
	if ct := contentTypeFromExt(filepath.Ext(fileName)); ct != "" {
		req.Header.Set("Content-Type", ct)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("tika status %d", resp.StatusCode)
		// Client errors will not heal on retry.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return "", backoff.Permanent(err)
		}
		return "", err
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	// Sanitize control characters, then collapse all whitespace to single spaces.
	sanitized := textx.SanitizeText(string(b))
	return strings.Join(strings.Fields(sanitized), " "), nil
}

// resolvePath constrains reads to the temp and working directories unless
// absolute paths were explicitly allowed. Uploaded files land in the system
// temp dir in production.
func (c *Client) resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs = filepath.Clean(abs)
	if c.allowAbsPaths {
		return abs, nil
	}
	tmp := filepath.Clean(os.TempDir())
	wd, _ := os.Getwd()
	wd = filepath.Clean(wd)
	for _, base := range []string{tmp, wd} {
		if abs == base || strings.HasPrefix(abs, base+string(os.PathSeparator)) {
			rel, err := filepath.Rel(base, abs)
			if err != nil {
				return "", err
			}
			return filepath.Join(base, rel), nil
		}
	}
	return "", fmt.Errorf("disallowed path: %s", abs)
}

func contentTypeFromExt(ext string) string {
	ext = strings.ToLower(ext)
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		if ext != "" {
			return mime.TypeByExtension(ext)
		}
	}
	return ""
}
