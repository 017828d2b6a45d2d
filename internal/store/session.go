package store

import (
	"context"

	"github.com/tenantry/contacts-api/internal/domain"
)

// SessionStore defines the interface for session token persistence.
// Sessions are keyed by the opaque token; revocation is a delete, so a
// token ceases to resolve the moment it is revoked.
type SessionStore interface {
	// Create saves a newly issued session.
	Create(ctx context.Context, session *domain.Session) error

	// GetByToken retrieves a session by its opaque token.
	// Returns ErrSessionNotFound if the token was never issued or has
	// been revoked.
	GetByToken(ctx context.Context, token string) (*domain.Session, error)

	// Delete revokes a session by its token.
	// Returns ErrSessionNotFound if the token does not resolve.
	Delete(ctx context.Context, token string) error
}
