// Package auth provides authentication primitives: password hashing and
// verification, opaque session token generation, and the session service
// that issues, resolves and revokes tokens.
package auth

import "errors"

// Authentication errors.
var (
	// ErrInvalidCredentials is returned when a login fails. The same error
	// covers both an unknown username and a wrong password so that callers
	// cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a presented session token does not
	// resolve, either because it was never issued or because it has been
	// revoked by logout.
	ErrInvalidToken = errors.New("invalid token")
)
