package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is a generic version of the entity-specific not found
	// errors (e.g., ErrUserNotFound, ErrContactNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrSessionNotFound indicates that the presented session token is not
	// known to the store, either because it was never issued or because it
	// has been revoked.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// ErrContactNotFound indicates that the requested contact does not exist
	// or is not owned by the requesting user. The two cases are deliberately
	// indistinguishable so that tenants cannot probe each other's data.
	ErrContactNotFound = fmt.Errorf("%w: contact", ErrNotFound)

	// ErrAddressNotFound indicates that the requested address does not exist
	// or its ownership chain does not reach the requesting user.
	ErrAddressNotFound = fmt.Errorf("%w: address", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUsernameTaken indicates that a user with the given username already
	// exists. Returned when registration collides with the unique constraint.
	ErrUsernameTaken = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
