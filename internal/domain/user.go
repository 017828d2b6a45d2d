package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User-specific validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooShort    = errors.New("username must be at least 3 characters long")
	ErrUsernameTooLong     = errors.New("username must be at most 100 characters long")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNameTooLong         = errors.New("name must be at most 100 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Username and name length bounds. The password upper bound is bcrypt's
// practical input limit.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 100
	MaxNameLength     = 100
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// User represents a registered account. Each user owns a disjoint set of
// contacts; the username is unique across the system.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	Password       string    `json:"-"` // Plaintext password, used transiently during registration/updates
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username, name and password.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, name, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Name:      name,
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	switch {
	case u.Username == "":
		return ErrEmptyUsername
	case len(u.Username) < MinUsernameLength:
		return ErrUsernameTooShort
	case len(u.Username) > MaxUsernameLength:
		return ErrUsernameTooLong
	}

	if u.Name == "" {
		return ErrEmptyName
	}
	if len(u.Name) > MaxNameLength {
		return ErrNameTooLong
	}

	// During creation or a password change the plaintext password is
	// present and must satisfy the length bounds. Users loaded from the
	// database carry only the hash.
	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
