package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
)

// AddressStore defines the interface for address data persistence.
// Lookups are scoped through the ownership chain address -> contact ->
// user; a break anywhere in the chain is reported as a not-found error.
type AddressStore interface {
	// Create saves a new address under a contact owned by userID.
	// Returns ErrContactNotFound if the contact does not exist or is not
	// owned by userID.
	Create(ctx context.Context, userID uuid.UUID, address *domain.Address) error

	// Get retrieves an address by ID, scoped to the contact and its owner.
	// Returns ErrAddressNotFound if the chain does not resolve.
	Get(ctx context.Context, userID, contactID, addressID uuid.UUID) (*domain.Address, error)

	// List returns all addresses of a contact owned by userID, oldest
	// first. Returns ErrContactNotFound if the contact does not resolve.
	List(ctx context.Context, userID, contactID uuid.UUID) ([]*domain.Address, error)

	// Update replaces the mutable fields of an address, scoped to the
	// ownership chain. Returns ErrAddressNotFound if the chain does not
	// resolve.
	Update(ctx context.Context, userID uuid.UUID, address *domain.Address) error

	// Delete removes an address, scoped to the ownership chain.
	// Returns ErrAddressNotFound if the chain does not resolve.
	Delete(ctx context.Context, userID, contactID, addressID uuid.UUID) error
}
