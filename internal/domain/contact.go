package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Contact-specific validation errors
var (
	ErrEmptyContactID     = errors.New("contact ID cannot be empty")
	ErrEmptyContactUserID = errors.New("contact user ID cannot be empty")
	ErrEmptyFirstName     = errors.New("first name cannot be empty")
	ErrFirstNameTooLong   = errors.New("first name must be at most 100 characters long")
	ErrLastNameTooLong    = errors.New("last name must be at most 100 characters long")
	ErrContactEmailTooLong = errors.New(
		"contact email must be at most 200 characters long",
	)
	ErrContactPhoneTooLong = errors.New("contact phone must be at most 20 characters long")
)

// Contact field length bounds.
const (
	MaxContactNameLength  = 100
	MaxContactEmailLength = 200
	MaxContactPhoneLength = 20
)

// Contact is an address-book entry owned by exactly one user. Only the
// first name is required; the remaining fields are nil when absent and
// render as JSON null.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContact creates a new Contact owned by the given user.
// It generates a new UUID for the contact ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewContact(userID uuid.UUID, firstName string, lastName, email, phone *string) (*Contact, error) {
	now := time.Now().UTC()
	contact := &Contact{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks if the Contact has valid data.
func (c *Contact) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyContactID
	}
	if c.UserID == uuid.Nil {
		return ErrEmptyContactUserID
	}
	if c.FirstName == "" {
		return ErrEmptyFirstName
	}
	if len(c.FirstName) > MaxContactNameLength {
		return ErrFirstNameTooLong
	}
	if c.LastName != nil && len(*c.LastName) > MaxContactNameLength {
		return ErrLastNameTooLong
	}
	if c.Email != nil && len(*c.Email) > MaxContactEmailLength {
		return ErrContactEmailTooLong
	}
	if c.Phone != nil && len(*c.Phone) > MaxContactPhoneLength {
		return ErrContactPhoneTooLong
	}
	return nil
}
