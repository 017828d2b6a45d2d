package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/store"
)

// SessionService manages the lifecycle of opaque session tokens.
// A token exists exactly between Issue and Revoke; Resolve on a revoked or
// unknown token fails with ErrInvalidToken.
type SessionService interface {
	// Issue creates and persists a new session for the given user.
	Issue(ctx context.Context, userID uuid.UUID) (*domain.Session, error)

	// Resolve maps a presented token to the owning user.
	// Returns ErrInvalidToken if the token does not resolve.
	Resolve(ctx context.Context, token string) (*domain.User, error)

	// Revoke deletes the session for the given token, invalidating it.
	// Returns ErrInvalidToken if the token does not resolve.
	Revoke(ctx context.Context, token string) error
}

// SessionServiceImpl implements the SessionService interface over the
// session and user stores.
type SessionServiceImpl struct {
	sessions store.SessionStore
	users    store.UserStore
	tokens   TokenGenerator
	logger   *slog.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	sessions store.SessionStore,
	users store.UserStore,
	tokens TokenGenerator,
	log *slog.Logger,
) *SessionServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &SessionServiceImpl{
		sessions: sessions,
		users:    users,
		tokens:   tokens,
		logger:   log.With(slog.String("component", "session_service")),
	}
}

// Ensure SessionServiceImpl implements SessionService
var _ SessionService = (*SessionServiceImpl)(nil)

// Issue implements SessionService.Issue
func (s *SessionServiceImpl) Issue(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	token, err := s.tokens.Generate()
	if err != nil {
		s.logger.Error("failed to generate session token",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	session, err := domain.NewSession(token, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("failed to persist session",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	s.logger.Debug("session issued", "user_id", userID)
	return session, nil
}

// Resolve implements SessionService.Resolve
func (s *SessionServiceImpl) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("failed to look up session", "error", err)
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		// A dangling session without its user means the account is gone;
		// the token is no longer valid.
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("failed to load session user",
			"error", err,
			"user_id", session.UserID)
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	return user, nil
}

// Revoke implements SessionService.Revoke
func (s *SessionServiceImpl) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return ErrInvalidToken
		}
		s.logger.Error("failed to revoke session", "error", err)
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Debug("session revoked")
	return nil
}
