package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Paging is the metadata reported alongside list responses.
type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// DataResponse is the uniform success envelope. Paging is present only on
// list endpoints.
type DataResponse struct {
	Data   any     `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Errors  string `json:"errors"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope wrapping the given payload.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any) {
	RespondWithJSON(w, r, status, DataResponse{Data: data})
}

// RespondWithPage writes a success envelope carrying a page of results and
// its paging metadata.
func RespondWithPage(w http.ResponseWriter, r *http.Request, status int, data any, paging Paging) {
	RespondWithJSON(w, r, status, DataResponse{Data: data, Paging: &paging})
}

// RespondWithError writes a failure envelope with the given status code
// and message. It also sets the trace ID from the request context if
// available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Errors: message, TraceID: traceID})
}

// RespondWithErrorAndLog writes a failure envelope carrying only the safe
// user message while logging the full error for diagnosis. 5xx responses
// log at ERROR level, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Errors: userMessage, TraceID: traceID})
}
