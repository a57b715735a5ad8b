package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fairyhunter13/resume-fit-engine/internal/config"
	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
	"github.com/fairyhunter13/resume-fit-engine/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg       config.Config
	Analyze   usecase.AnalyzeService
	TikaCheck func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, analyze usecase.AnalyzeService, tikaCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Analyze: analyze, TikaCheck: tikaCheck}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

type analyzeRequest struct {
	ResumeText     string              `json:"resume_text" validate:"required,max=100000"`
	JobDescription string              `json:"job_description" validate:"required,max=20000"`
	JobMetadata    *domain.JobMetadata `json:"job_metadata"`
	RequiredSkills []string            `json:"required_skills" validate:"max=100,dive,max=100"`
}

type analyzeResponse struct {
	ID     string                `json:"id"`
	Result domain.AnalysisResult `json:"result"`
}

// AnalyzeHandler analyzes raw resume and job texts.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !acceptsJSON(w, r) {
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxBodyBytes)
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if !validateRequest(w, r, req) {
			return
		}

		res := s.Analyze.AnalyzeFit(r.Context(), domain.AnalyzeInput{
			ResumeText:     req.ResumeText,
			JobText:        req.JobDescription,
			JobMetadata:    req.JobMetadata,
			RequiredSkills: req.RequiredSkills,
		})
		writeJSON(w, http.StatusOK, analyzeResponse{ID: uuid.NewString(), Result: res})
	}
}

// AnalyzeDocumentHandler accepts a resume document upload plus a job
// description form field. The document is written to a temp file and
// resolved to plain text through the extractor before scoring.
func (s *Server) AnalyzeDocumentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !acceptsJSON(w, r) {
			return
		}
		if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			writeError(w, r, fmt.Errorf("%w: content-type must be multipart/form-data", domain.ErrInvalidArgument), nil)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxBodyBytes)
		if err := r.ParseMultipartForm(s.Cfg.MaxBodyBytes); err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "too large") {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorEnvelope{Error: apiError{
					Code:    "INVALID_ARGUMENT",
					Message: "payload too large",
					Details: map[string]any{"max_bytes": s.Cfg.MaxBodyBytes},
				}})
				return
			}
			writeError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err), nil)
			return
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: resume file required", domain.ErrInvalidArgument), map[string]string{"field": "resume"})
			return
		}
		defer func() { _ = file.Close() }()

		if !allowedExt(header.Filename) {
			writeJSON(w, http.StatusUnsupportedMediaType, errorEnvelope{Error: apiError{
				Code:    "INVALID_ARGUMENT",
				Message: "unsupported media type for resume",
				Details: map[string]any{"filename": header.Filename},
			}})
			return
		}

		jobDescription := r.FormValue("job_description")
		if jobDescription == "" {
			writeError(w, r, fmt.Errorf("%w: job_description required", domain.ErrInvalidArgument), map[string]string{"field": "job_description"})
			return
		}

		tmp, err := os.CreateTemp("", "resume-*"+filepath.Ext(header.Filename))
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: temp file: %v", domain.ErrInternal, err), nil)
			return
		}
		defer func() { _ = os.Remove(tmp.Name()); _ = tmp.Close() }()
		if _, err := io.Copy(tmp, file); err != nil {
			writeError(w, r, fmt.Errorf("%w: resume read: %v", domain.ErrInvalidArgument, err), nil)
			return
		}

		in := domain.AnalyzeInput{
			JobText:        jobDescription,
			JobMetadata:    jobMetadataFromForm(r),
			RequiredSkills: splitSkills(r.FormValue("required_skills")),
		}
		res := s.Analyze.AnalyzeDocument(r.Context(), header.Filename, tmp.Name(), in)
		writeJSON(w, http.StatusOK, analyzeResponse{ID: uuid.NewString(), Result: res})
	}
}

// HealthzHandler reports process liveness.
func (s *Server) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// ReadyzHandler probes the Tika dependency when configured. The scoring
// chain itself has no hard dependencies, so Tika being down degrades the
// document path but never the text path.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := []check{}
		ready := true
		if s.TikaCheck != nil {
			c := check{Name: "tika", OK: true}
			if err := s.TikaCheck(ctx); err != nil {
				c.OK = false
				c.Details = err.Error()
				ready = false
			}
			checks = append(checks, c)
		}
		status := http.StatusOK
		if !ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, map[string]any{"ready": ready, "checks": checks})
	}
}

// OpenAPIServe serves api/openapi.yaml if present.
func (s *Server) OpenAPIServe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile("api/openapi.yaml")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}

// acceptsJSON rejects requests whose Accept header excludes JSON.
func acceptsJSON(w http.ResponseWriter, r *http.Request) bool {
	a := r.Header.Get("Accept")
	if a == "" || a == "*/*" || strings.Contains(a, "application/json") {
		return true
	}
	writeJSON(w, http.StatusNotAcceptable, errorEnvelope{Error: apiError{
		Code:    "INVALID_ARGUMENT",
		Message: "not acceptable",
		Details: map[string]any{"accept": a},
	}})
	return false
}

func validateRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := getValidator().Struct(req); err != nil {
		verrs := map[string]string{}
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				verrs[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), verrs)
		return false
	}
	return true
}

// allowedExt enforces an allowlist for uploads: .txt, .pdf, .docx
func allowedExt(name string) bool {
	n := strings.ToLower(name)
	return strings.HasSuffix(n, ".txt") || strings.HasSuffix(n, ".pdf") || strings.HasSuffix(n, ".docx")
}

func jobMetadataFromForm(r *http.Request) *domain.JobMetadata {
	md := domain.JobMetadata{
		Type:     r.FormValue("job_type"),
		Level:    r.FormValue("job_level"),
		Industry: r.FormValue("job_industry"),
	}
	if md == (domain.JobMetadata{}) {
		return nil
	}
	return &md
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
