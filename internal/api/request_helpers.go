package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/api/shared"
	"github.com/tenantry/contacts-api/internal/domain"
)

// userFromContext extracts the authenticated user placed in the request
// context by the auth middleware. The second return is false when the
// middleware did not run or failed, which protected handlers treat as an
// unauthorized request.
func userFromContext(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// sessionTokenFromContext extracts the raw session token the request
// presented, as recorded by the auth middleware.
func sessionTokenFromContext(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(shared.SessionTokenContextKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// pathUUID extracts and parses a UUID path parameter.
func pathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// requireUserAndPathUUID extracts both the authenticated user and a UUID
// path parameter, writing the error response itself when either is
// missing. Returns false when a response has already been written.
func requireUserAndPathUUID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (*domain.User, uuid.UUID, bool) {
	user, ok := userFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return nil, uuid.Nil, false
	}

	id, err := pathUUID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, uuid.Nil, false
	}

	return user, id, true
}
