package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed
	// the password already; only HashedPassword is persisted.
	// Returns ErrUsernameTaken if the username is already in use.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update modifies an existing user's name and hashed password.
	// The caller must provide a complete user object including
	// HashedPassword. Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// WithTx returns a UserStore bound to the provided transaction, so
	// that multiple operations can run atomically. The transaction is
	// created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
