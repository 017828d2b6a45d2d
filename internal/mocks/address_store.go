package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing. Ownership
// is checked through an associated MockContactStore the same way the
// postgres store joins through the contacts table.
type MockAddressStore struct {
	// Function fields for customizable behavior
	CreateFn func(ctx context.Context, userID uuid.UUID, address *domain.Address) error
	GetFn    func(ctx context.Context, userID, contactID, addressID uuid.UUID) (*domain.Address, error)
	ListFn   func(ctx context.Context, userID, contactID uuid.UUID) ([]*domain.Address, error)
	UpdateFn func(ctx context.Context, userID uuid.UUID, address *domain.Address) error
	DeleteFn func(ctx context.Context, userID, contactID, addressID uuid.UUID) error

	// ContactStore resolves the ownership chain for the default
	// implementation.
	ContactStore *MockContactStore

	// Data for default implementation, keyed by address ID
	mu        sync.Mutex
	Addresses map[uuid.UUID]*domain.Address
}

// NewMockAddressStore creates a new mock store backed by the given
// contact store for ownership checks.
func NewMockAddressStore(contacts *MockContactStore) *MockAddressStore {
	return &MockAddressStore{
		ContactStore: contacts,
		Addresses:    make(map[uuid.UUID]*domain.Address),
	}
}

func (m *MockAddressStore) contactOwned(ctx context.Context, userID, contactID uuid.UUID) bool {
	if m.ContactStore == nil {
		return true
	}
	_, err := m.ContactStore.Get(ctx, userID, contactID)
	return err == nil
}

// Create implements the AddressStore interface
func (m *MockAddressStore) Create(ctx context.Context, userID uuid.UUID, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, address)
	}

	if !m.contactOwned(ctx, userID, address.ContactID) {
		return store.ErrContactNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *address
	m.Addresses[address.ID] = &clone
	return nil
}

// Get implements the AddressStore interface
func (m *MockAddressStore) Get(ctx context.Context, userID, contactID, addressID uuid.UUID) (*domain.Address, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID, contactID, addressID)
	}

	if !m.contactOwned(ctx, userID, contactID) {
		return nil, store.ErrAddressNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	address, exists := m.Addresses[addressID]
	if !exists || address.ContactID != contactID {
		return nil, store.ErrAddressNotFound
	}

	clone := *address
	return &clone, nil
}

// List implements the AddressStore interface
func (m *MockAddressStore) List(ctx context.Context, userID, contactID uuid.UUID) ([]*domain.Address, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, contactID)
	}

	if !m.contactOwned(ctx, userID, contactID) {
		return nil, store.ErrContactNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	addresses := make([]*domain.Address, 0)
	for _, address := range m.Addresses {
		if address.ContactID != contactID {
			continue
		}
		clone := *address
		addresses = append(addresses, &clone)
	}

	sort.Slice(addresses, func(i, j int) bool {
		if !addresses[i].CreatedAt.Equal(addresses[j].CreatedAt) {
			return addresses[i].CreatedAt.Before(addresses[j].CreatedAt)
		}
		return addresses[i].ID.String() < addresses[j].ID.String()
	})

	return addresses, nil
}

// Update implements the AddressStore interface
func (m *MockAddressStore) Update(ctx context.Context, userID uuid.UUID, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, address)
	}

	if !m.contactOwned(ctx, userID, address.ContactID) {
		return store.ErrAddressNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.Addresses[address.ID]
	if !exists || existing.ContactID != address.ContactID {
		return store.ErrAddressNotFound
	}

	clone := *address
	clone.CreatedAt = existing.CreatedAt
	m.Addresses[address.ID] = &clone
	return nil
}

// Delete implements the AddressStore interface
func (m *MockAddressStore) Delete(ctx context.Context, userID, contactID, addressID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, contactID, addressID)
	}

	if !m.contactOwned(ctx, userID, contactID) {
		return store.ErrAddressNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	address, exists := m.Addresses[addressID]
	if !exists || address.ContactID != contactID {
		return store.ErrAddressNotFound
	}

	delete(m.Addresses, addressID)
	return nil
}
