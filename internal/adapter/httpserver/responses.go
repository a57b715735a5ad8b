// Package httpserver contains HTTP handlers and middleware.
//
// It provides the REST API surface of the fit-scoring engine: text analysis,
// document analysis, and health probes. The package keeps HTTP concerns
// separate from the scoring pipeline.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fairyhunter13/resume-fit-engine/internal/domain"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, _ *http.Request, err error, details interface{}) {
	code := http.StatusInternalServerError
	codeStr := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
		codeStr = "INVALID_ARGUMENT"
	case errors.Is(err, domain.ErrInsufficientInput):
		code = http.StatusUnprocessableEntity
		codeStr = "INSUFFICIENT_INPUT"
	case errors.Is(err, domain.ErrExtractionUnavailable):
		code = http.StatusServiceUnavailable
		codeStr = "EXTRACTION_UNAVAILABLE"
	case errors.Is(err, domain.ErrRemoteTimeout):
		code = http.StatusServiceUnavailable
		codeStr = "REMOTE_TIMEOUT"
	case errors.Is(err, domain.ErrRemoteUnavailable):
		code = http.StatusServiceUnavailable
		codeStr = "REMOTE_UNAVAILABLE"
	case errors.Is(err, domain.ErrRemoteMalformed):
		code = http.StatusBadGateway
		codeStr = "REMOTE_MALFORMED"
	}
	writeJSON(w, code, errorEnvelope{Error: apiError{Code: codeStr, Message: err.Error(), Details: details}})
}
