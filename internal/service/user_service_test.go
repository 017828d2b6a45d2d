package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/mocks"
	"github.com/tenantry/contacts-api/internal/service/auth"
	"github.com/tenantry/contacts-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(users store.UserStore) *UserServiceImpl {
	return NewUserService(
		users,
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewBcryptVerifier(),
		nil,
		nil,
	)
}

func TestUserServiceRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := mocks.NewMockUserStore()
	service := newTestUserService(users)

	user, err := service.Register(ctx, "alice", "Alice Smith", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice Smith", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The plaintext is cleared and only the hash stored
	assert.Empty(t, user.Password)
	require.NotEmpty(t, user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("secret123")))
}

func TestUserServiceRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := mocks.NewMockUserStore()
	service := newTestUserService(users)

	_, err := service.Register(ctx, "alice", "Alice Smith", "secret123")
	require.NoError(t, err)

	// Same username again fails with the duplicate sentinel
	_, err = service.Register(ctx, "alice", "Another Alice", "different456")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestUserServiceRegisterValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	service := newTestUserService(mocks.NewMockUserStore())

	tests := []struct {
		name     string
		username string
		fullName string
		password string
		wantErr  error
	}{
		{"short username", "al", "Alice", "secret123", domain.ErrUsernameTooShort},
		{"empty username", "", "Alice", "secret123", domain.ErrEmptyUsername},
		{"empty name", "alice", "", "secret123", domain.ErrEmptyName},
		{"short password", "alice", "Alice", "short", domain.ErrPasswordTooShort},
		{"empty password", "alice", "Alice", "", domain.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.username, tt.fullName, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := mocks.NewMockUserStore()
	service := newTestUserService(users)

	registered, err := service.Register(ctx, "alice", "Alice Smith", "secret123")
	require.NoError(t, err)

	// Correct credentials succeed
	user, err := service.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Wrong password and unknown username fail with the same error, so a
	// caller cannot probe which usernames exist
	_, wrongPassErr := service.Authenticate(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, wrongPassErr, auth.ErrInvalidCredentials)

	_, unknownUserErr := service.Authenticate(ctx, "nobody", "secret123")
	assert.ErrorIs(t, unknownUserErr, auth.ErrInvalidCredentials)

	assert.Equal(t, wrongPassErr, unknownUserErr)
}

func TestUserServiceUpdateName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := mocks.NewMockUserStore()
	service := newTestUserService(users)

	registered, err := service.Register(ctx, "alice", "Alice Smith", "secret123")
	require.NoError(t, err)
	originalHash := registered.HashedPassword

	newName := "Alice Jones"
	updated, err := service.Update(ctx, registered.ID, UserUpdate{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Alice Jones", updated.Name)

	// Omitted password keeps its stored hash; the old password still works
	assert.Equal(t, originalHash, updated.HashedPassword)
	_, err = service.Authenticate(ctx, "alice", "secret123")
	assert.NoError(t, err)
}

func TestUserServiceUpdatePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := mocks.NewMockUserStore()
	service := newTestUserService(users)

	registered, err := service.Register(ctx, "alice", "Alice Smith", "secret123")
	require.NoError(t, err)

	newPassword := "newsecret456"
	updated, err := service.Update(ctx, registered.ID, UserUpdate{Password: &newPassword})
	require.NoError(t, err)

	// Omitted name keeps its stored value
	assert.Equal(t, "Alice Smith", updated.Name)
	assert.Empty(t, updated.Password)

	// The new password works, the old one does not
	_, err = service.Authenticate(ctx, "alice", "newsecret456")
	assert.NoError(t, err)
	_, err = service.Authenticate(ctx, "alice", "secret123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestUserServiceUpdateValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := mocks.NewMockUserStore()
	service := newTestUserService(users)

	registered, err := service.Register(ctx, "alice", "Alice Smith", "secret123")
	require.NoError(t, err)

	shortPassword := "short"
	_, err = service.Update(ctx, registered.ID, UserUpdate{Password: &shortPassword})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)

	// The stored credentials are untouched after a failed patch
	_, err = service.Authenticate(ctx, "alice", "secret123")
	assert.NoError(t, err)
}

func TestUserServiceUpdateMissingUser(t *testing.T) {
	t.Parallel()

	service := newTestUserService(mocks.NewMockUserStore())

	name := "Nobody"
	_, err := service.Update(context.Background(), uuid.New(), UserUpdate{Name: &name})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserServiceWritesRunInTransaction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := mocks.NewMockUserStore()
	service := NewUserService(
		users,
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewBcryptVerifier(),
		db,
		nil,
	)

	// A successful registration commits
	mock.ExpectBegin()
	mock.ExpectCommit()
	registered, err := service.Register(ctx, "alice", "Alice Smith", "secret123")
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)

	// A duplicate username rolls back and surfaces the sentinel
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = service.Register(ctx, "alice", "Another Alice", "different456")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)

	assert.NoError(t, mock.ExpectationsWereMet())
}
