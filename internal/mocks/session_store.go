package mocks

import (
	"context"
	"sync"

	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/store"
)

// MockSessionStore implements store.SessionStore for testing
type MockSessionStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, session *domain.Session) error
	GetByTokenFn func(ctx context.Context, token string) (*domain.Session, error)
	DeleteFn     func(ctx context.Context, token string) error

	// Data for default implementation, keyed by token
	mu       sync.Mutex
	Sessions map[string]*domain.Session
}

// NewMockSessionStore creates a new mock store with initialized defaults
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		Sessions: make(map[string]*domain.Session),
	}
}

// Create implements the SessionStore interface
func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *session
	m.Sessions[session.Token] = &clone
	return nil
}

// GetByToken implements the SessionStore interface
func (m *MockSessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.Sessions[token]
	if !exists {
		return nil, store.ErrSessionNotFound
	}

	clone := *session
	return &clone, nil
}

// Delete implements the SessionStore interface
func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Sessions[token]; !exists {
		return store.ErrSessionNotFound
	}

	delete(m.Sessions, token)
	return nil
}
