package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error

	// Data for default implementation, keyed by username
	mu    sync.Mutex
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameTaken
	}

	clone := *user
	m.Users[user.Username] = &clone
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	clone := *user
	return &clone, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for username, existing := range m.Users {
		if existing.ID == user.ID {
			clone := *user
			m.Users[username] = &clone
			return nil
		}
	}

	return store.ErrUserNotFound
}

// WithTx implements the UserStore interface. The mock has no real
// transactions, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
