// Package middleware provides the HTTP middleware applied around the API
// handlers: session-token authentication and request tracing.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tenantry/contacts-api/internal/api/shared"
	"github.com/tenantry/contacts-api/internal/service/auth"
)

// AuthMiddleware authenticates requests by resolving the opaque session
// token from the Authorization header.
type AuthMiddleware struct {
	sessions auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(sessions auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Authenticate resolves the raw token from the Authorization header to a
// user and attaches both to the request context. Requests with a missing
// or unresolvable token are rejected with 401 before the handler runs.
// The header carries the bare token, no scheme prefix.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		user, err := m.sessions.Resolve(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to resolve session token", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		ctx = context.WithValue(ctx, shared.SessionTokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
