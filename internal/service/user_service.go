package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/service/auth"
	"github.com/tenantry/contacts-api/internal/store"
)

// UserUpdate carries a partial user patch. A nil field keeps the stored
// value.
type UserUpdate struct {
	Name     *string
	Password *string
}

// UserService provides account registration, credential verification and
// profile updates.
type UserService interface {
	// Register creates a new account. The password is hashed before
	// storage. Returns store.ErrUsernameTaken if the username is in use.
	Register(ctx context.Context, username, name, password string) (*domain.User, error)

	// Authenticate verifies a username/password pair and returns the
	// account on success. An unknown username and a wrong password both
	// return auth.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// Update applies a partial patch to the user. Omitted fields retain
	// their prior values; a new password is re-hashed before storage.
	Update(ctx context.Context, userID uuid.UUID, patch UserUpdate) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	db       *sql.DB
	logger   *slog.Logger
}

// NewUserService creates a new UserService. db may be nil, in which case
// writes run against the base store without a wrapping transaction; unit
// tests use that mode with in-memory stores.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	db *sql.DB,
	log *slog.Logger,
) *UserServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &UserServiceImpl{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		db:       db,
		logger:   log.With(slog.String("component", "user_service")),
	}
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// inTx runs fn against a transaction-bound user store when a database
// handle is present, and against the base store otherwise.
func (s *UserServiceImpl) inTx(
	ctx context.Context,
	fn func(ctx context.Context, users store.UserStore) error,
) error {
	if s.db == nil {
		return fn(ctx, s.users)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.users.WithTx(tx))
	})
}

// Register implements UserService.Register
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, name, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(username, name, password)
	if err != nil {
		s.logger.Debug("user validation failed during registration",
			"error", err,
			"username", username)
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = s.inTx(ctx, func(ctx context.Context, users store.UserStore) error {
		return users.Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			s.logger.Debug("attempted to register an existing username",
				"username", username)
			return nil, err
		}
		s.logger.Error("failed to save user",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username)
	return user, nil
}

// Authenticate implements UserService.Authenticate
func (s *UserServiceImpl) Authenticate(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same error as a wrong password, so callers cannot tell
			// which of the two failed.
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	s.logger.Debug("user authenticated", "user_id", user.ID)
	return user, nil
}

// Update implements UserService.Update
func (s *UserServiceImpl) Update(
	ctx context.Context,
	userID uuid.UUID,
	patch UserUpdate,
) (*domain.User, error) {
	var updated *domain.User

	err := s.inTx(ctx, func(ctx context.Context, users store.UserStore) error {
		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			user.Name = *patch.Name
		}
		if patch.Password != nil {
			// Validate the plaintext bounds before paying for the hash.
			user.Password = *patch.Password
			if err := user.Validate(); err != nil {
				return err
			}
			hashed, err := s.hasher.Hash(*patch.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user.HashedPassword = hashed
			user.Password = ""
		}
		user.UpdatedAt = time.Now().UTC()

		if err := users.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})

	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("attempted to update missing user", "user_id", userID)
		} else {
			s.logger.Error("failed to update user",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("user updated", "user_id", userID)
	return updated, nil
}
