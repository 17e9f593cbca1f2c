package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/curp/pkg/logger"
	"github.com/dmitrymomot/curp/pkg/requestid"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Code is a catalog key; Message is
// its translation in the negotiated language.
type ErrorDetail struct {
	Code      string              `json:"code"`
	Message   string              `json:"message"`
	Details   map[string][]string `json:"details,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) respond(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data})
}

// fail writes an error envelope and logs it. Client errors log at warn,
// server errors at error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, detail *ErrorDetail, cause error) {
	ctx := r.Context()
	detail.RequestID = requestid.FromContext(ctx)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.LogAttrs(ctx, level, "request error",
		logger.RequestID(detail.RequestID),
		logger.Error(cause),
		slog.Int("status_code", status),
		slog.String("error_code", detail.Code),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	writeJSON(w, status, Envelope{Error: detail})
}

// failHTTP renders a predefined HTTPError.
func (h *Handler) failHTTP(w http.ResponseWriter, r *http.Request, err HTTPError, cause error) {
	if cause == nil {
		cause = err
	}
	h.fail(w, r, err.Code, &ErrorDetail{
		Code:    err.Key,
		Message: h.tr.Tc(r.Context(), err.Key),
	}, cause)
}
