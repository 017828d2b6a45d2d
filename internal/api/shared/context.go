// Package shared holds the request-context keys, response envelope and
// request decoding helpers used across the API handlers and middleware.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// ContextKey is the key type for request context values.
type ContextKey string

// Context keys for values set by the middleware chain.
const (
	// UserContextKey carries the authenticated *domain.User.
	UserContextKey ContextKey = "user"

	// SessionTokenContextKey carries the raw session token the request
	// presented, so the logout handler can revoke exactly that session.
	SessionTokenContextKey ContextKey = "sessionToken"

	// TraceIDKey carries the per-request trace ID.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		// An empty trace ID only costs log correlation; the request
		// itself proceeds.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
