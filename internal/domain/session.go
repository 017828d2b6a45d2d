package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session-specific validation errors
var (
	ErrEmptySessionToken  = errors.New("session token cannot be empty")
	ErrEmptySessionUserID = errors.New("session user ID cannot be empty")
)

// Session is an issued login credential. Sessions are keyed by an opaque
// token handed to the client at login; revocation is a row delete, so a
// token is valid exactly between login and logout. A user may hold any
// number of concurrent sessions.
type Session struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// NewSession creates a Session binding the given opaque token to a user.
// Returns an error if validation fails.
func NewSession(token string, userID uuid.UUID) (*Session, error) {
	session := &Session{
		Token:    token,
		UserID:   userID,
		IssuedAt: time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the Session has valid data.
func (s *Session) Validate() error {
	if s.Token == "" {
		return ErrEmptySessionToken
	}
	if s.UserID == uuid.Nil {
		return ErrEmptySessionUserID
	}
	return nil
}
