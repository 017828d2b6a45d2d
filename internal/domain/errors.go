package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted
	// for the requesting identity.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError carries the field that failed validation alongside a
// human-readable reason. It wraps a sentinel error so callers can still
// classify it with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Unwrap returns the wrapped sentinel error to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field and reason.
// If sentinel is nil, ErrValidation is used.
func NewValidationError(field, reason string, sentinel error) *ValidationError {
	if sentinel == nil {
		sentinel = ErrValidation
	}
	return &ValidationError{Field: field, Reason: reason, Err: sentinel}
}
