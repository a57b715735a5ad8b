package tika_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-fit-engine/internal/adapter/textextractor/tika"
	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestExtractPath_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tika", r.URL.Path)
		assert.Equal(t, "text/plain", r.Header.Get("Accept"))
		_, _ = w.Write([]byte("  Extracted \x00text\n\nwith   spacing  "))
	}))
	defer srv.Close()

	c := tika.New(srv.URL)
	p := writeTemp(t, "cv.txt", "raw bytes")
	got, err := c.ExtractPath(context.Background(), "cv.txt", p)
	require.NoError(t, err)
	assert.Equal(t, "Extracted text with spacing", got)
}

func TestExtractPath_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	c := tika.New(srv.URL, tika.WithRetryMaxElapsed(5*time.Second))
	p := writeTemp(t, "cv.pdf", "pdf bytes")
	got, err := c.ExtractPath(context.Background(), "cv.pdf", p)
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}

func TestExtractPath_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := tika.New(srv.URL, tika.WithRetryMaxElapsed(2*time.Second))
	p := writeTemp(t, "cv.docx", "docx bytes")
	_, err := c.ExtractPath(context.Background(), "cv.docx", p)
	require.ErrorIs(t, err, domain.ErrExtractionUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestExtractPath_ServerDownExhaustsRetries(t *testing.T) {
	t.Parallel()
	c := tika.New("http://127.0.0.1:1",
		tika.WithTimeout(100*time.Millisecond),
		tika.WithRetryMaxElapsed(300*time.Millisecond))
	p := writeTemp(t, "cv.txt", "bytes")
	_, err := c.ExtractPath(context.Background(), "cv.txt", p)
	require.ErrorIs(t, err, domain.ErrExtractionUnavailable)
}

func TestExtractPath_DisallowedPath(t *testing.T) {
	t.Parallel()
	c := tika.New("http://unused")
	_, err := c.ExtractPath(context.Background(), "x.txt", "/etc/hostname")
	require.Error(t, err)
}

func TestExtractPath_MissingFile(t *testing.T) {
	t.Parallel()
	c := tika.New("http://unused")
	_, err := c.ExtractPath(context.Background(), "x.txt", filepath.Join(os.TempDir(), "definitely-absent-file.txt"))
	require.Error(t, err)
}
