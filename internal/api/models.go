package api

import (
	"time"

	"github.com/tenantry/contacts-api/internal/domain"
)

// Request payloads

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name"     validate:"required,max=100"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the partial payload for the user update
// endpoint. Omitted fields keep their stored values.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

// ContactRequest defines the payload for contact creation and update.
// Updates replace every optional field with the submitted value, absent
// meaning null.
type ContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=100"`
	Email     *string `json:"email"      validate:"omitempty,email,max=200"`
	Phone     *string `json:"phone"      validate:"omitempty,max=20"`
}

// AddressRequest defines the payload for address creation and update.
type AddressRequest struct {
	Street     *string `json:"street"      validate:"omitempty,max=200"`
	City       *string `json:"city"        validate:"omitempty,max=200"`
	Province   *string `json:"province"    validate:"omitempty,max=200"`
	Country    string  `json:"country"     validate:"required,max=100"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=10"`
}

// Response payloads

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginResponse is the user shape returned by login, with the issued
// session token attached.
type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// ContactResponse is the public shape of a contact. Absent optional
// fields render as JSON null rather than being omitted.
type ContactResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddressResponse is the public shape of an address.
type AddressResponse struct {
	ID         string    `json:"id"`
	Street     *string   `json:"street"`
	City       *string   `json:"city"`
	Province   *string   `json:"province"`
	Country    string    `json:"country"`
	PostalCode *string   `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Name:     user.Name,
	}
}

func contactToResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID.String(),
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

func contactsToResponse(contacts []*domain.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, contactToResponse(contact))
	}
	return out
}

func addressToResponse(address *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID.String(),
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
		CreatedAt:  address.CreatedAt,
		UpdatedAt:  address.UpdatedAt,
	}
}

func addressesToResponse(addresses []*domain.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, addressToResponse(address))
	}
	return out
}
