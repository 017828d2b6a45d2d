package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing. The default
// implementation mirrors the query semantics of the postgres store:
// lookups are scoped by owner, search filters are case-insensitive
// substring matches and results come back newest first.
type MockContactStore struct {
	// Function fields for customizable behavior
	CreateFn func(ctx context.Context, contact *domain.Contact) error
	GetFn    func(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error)
	UpdateFn func(ctx context.Context, contact *domain.Contact) error
	DeleteFn func(ctx context.Context, userID, contactID uuid.UUID) error
	SearchFn func(ctx context.Context, userID uuid.UUID, filter store.ContactFilter) ([]*domain.Contact, int64, error)

	// Data for default implementation, keyed by contact ID
	mu       sync.Mutex
	Contacts map[uuid.UUID]*domain.Contact
}

// NewMockContactStore creates a new mock store with initialized defaults
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{
		Contacts: make(map[uuid.UUID]*domain.Contact),
	}
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *contact
	m.Contacts[contact.ID] = &clone
	return nil
}

// Get implements the ContactStore interface
func (m *MockContactStore) Get(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID, contactID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	contact, exists := m.Contacts[contactID]
	if !exists || contact.UserID != userID {
		return nil, store.ErrContactNotFound
	}

	clone := *contact
	return &clone, nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.Contacts[contact.ID]
	if !exists || existing.UserID != contact.UserID {
		return store.ErrContactNotFound
	}

	clone := *contact
	clone.CreatedAt = existing.CreatedAt
	m.Contacts[contact.ID] = &clone
	return nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, contactID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	contact, exists := m.Contacts[contactID]
	if !exists || contact.UserID != userID {
		return store.ErrContactNotFound
	}

	delete(m.Contacts, contactID)
	return nil
}

// Search implements the ContactStore interface
func (m *MockContactStore) Search(
	ctx context.Context,
	userID uuid.UUID,
	filter store.ContactFilter,
) ([]*domain.Contact, int64, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, userID, filter)
	}

	filter.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	var matches []*domain.Contact
	for _, contact := range m.Contacts {
		if contact.UserID != userID {
			continue
		}
		if !matchesFilter(contact, filter) {
			continue
		}
		clone := *contact
		matches = append(matches, &clone)
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID.String() > matches[j].ID.String()
	})

	total := int64(len(matches))

	start := filter.Offset()
	if start >= len(matches) {
		return []*domain.Contact{}, total, nil
	}
	end := start + filter.Size
	if end > len(matches) {
		end = len(matches)
	}

	return matches[start:end], total, nil
}

func matchesFilter(contact *domain.Contact, filter store.ContactFilter) bool {
	if filter.Name != "" {
		if !containsFold(contact.FirstName, filter.Name) &&
			!containsFoldPtr(contact.LastName, filter.Name) {
			return false
		}
	}
	if filter.Email != "" && !containsFoldPtr(contact.Email, filter.Email) {
		return false
	}
	if filter.Phone != "" && !containsFoldPtr(contact.Phone, filter.Phone) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func containsFoldPtr(s *string, substr string) bool {
	return s != nil && containsFold(*s, substr)
}
