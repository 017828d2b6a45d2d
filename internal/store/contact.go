package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
)

// Default and maximum page sizes for contact searches.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ContactFilter describes a contact search. String filters are substring
// matches; Name matches the first or the last name. Page is 1-based.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// Normalize applies the default paging values to out-of-range inputs.
func (f *ContactFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Size < 1 {
		f.Size = DefaultPageSize
	}
	if f.Size > MaxPageSize {
		f.Size = MaxPageSize
	}
}

// Offset returns the row offset for the filter's page.
func (f *ContactFilter) Offset() int {
	return (f.Page - 1) * f.Size
}

// ContactStore defines the interface for contact data persistence. Every
// lookup is scoped by the owning user ID; a contact that exists but
// belongs to another user is reported as ErrContactNotFound.
type ContactStore interface {
	// Create saves a new contact to the store.
	Create(ctx context.Context, contact *domain.Contact) error

	// Get retrieves a contact by ID, scoped to the owning user.
	// Returns ErrContactNotFound if no such contact is owned by userID.
	Get(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error)

	// Update replaces the mutable fields of a contact, scoped to the
	// owning user. Returns ErrContactNotFound if no such contact is
	// owned by userID.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes a contact, scoped to the owning user, cascading to
	// its addresses. Returns ErrContactNotFound if no such contact is
	// owned by userID.
	Delete(ctx context.Context, userID, contactID uuid.UUID) error

	// Search returns the page of contacts owned by userID that match the
	// filter, newest first, together with the total number of matches
	// across all pages. An out-of-range page yields an empty slice while
	// the total still reflects the full match count.
	Search(ctx context.Context, userID uuid.UUID, filter ContactFilter) ([]*domain.Contact, int64, error)
}
