package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Address-specific validation errors
var (
	ErrEmptyAddressID        = errors.New("address ID cannot be empty")
	ErrEmptyAddressContactID = errors.New("address contact ID cannot be empty")
	ErrEmptyCountry          = errors.New("country cannot be empty")
	ErrCountryTooLong        = errors.New("country must be at most 100 characters long")
	ErrStreetTooLong         = errors.New("street must be at most 200 characters long")
	ErrCityTooLong           = errors.New("city must be at most 200 characters long")
	ErrProvinceTooLong       = errors.New("province must be at most 200 characters long")
	ErrPostalCodeTooLong     = errors.New("postal code must be at most 10 characters long")
)

// Address field length bounds.
const (
	MaxCountryLength     = 100
	MaxAddressLineLength = 200
	MaxPostalCodeLength  = 10
)

// Address is a mailing address owned by exactly one contact. Access is
// scoped through the owning contact, so the ownership chain runs
// address -> contact -> user.
type Address struct {
	ID         uuid.UUID `json:"id"`
	ContactID  uuid.UUID `json:"contact_id"`
	Street     *string   `json:"street"`
	City       *string   `json:"city"`
	Province   *string   `json:"province"`
	Country    string    `json:"country"`
	PostalCode *string   `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewAddress creates a new Address owned by the given contact.
// Returns an error if validation fails.
func NewAddress(contactID uuid.UUID, street, city, province *string, country string, postalCode *string) (*Address, error) {
	now := time.Now().UTC()
	address := &Address{
		ID:         uuid.New(),
		ContactID:  contactID,
		Street:     street,
		City:       city,
		Province:   province,
		Country:    country,
		PostalCode: postalCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := address.Validate(); err != nil {
		return nil, err
	}

	return address, nil
}

// Validate checks if the Address has valid data.
func (a *Address) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAddressID
	}
	if a.ContactID == uuid.Nil {
		return ErrEmptyAddressContactID
	}
	if a.Country == "" {
		return ErrEmptyCountry
	}
	if len(a.Country) > MaxCountryLength {
		return ErrCountryTooLong
	}
	if a.Street != nil && len(*a.Street) > MaxAddressLineLength {
		return ErrStreetTooLong
	}
	if a.City != nil && len(*a.City) > MaxAddressLineLength {
		return ErrCityTooLong
	}
	if a.Province != nil && len(*a.Province) > MaxAddressLineLength {
		return ErrProvinceTooLong
	}
	if a.PostalCode != nil && len(*a.PostalCode) > MaxPostalCodeLength {
		return ErrPostalCodeTooLong
	}
	return nil
}
