package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/platform/logger"
	"github.com/tenantry/contacts-api/internal/store"
)

// SessionStore implements the store.SessionStore interface using a
// PostgreSQL database as the storage backend. Each row is one issued
// token; deleting the row is the revocation.
type SessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface. If logger is nil, the process default logger is
// used.
func NewSessionStore(db store.DBTX, log *slog.Logger) *SessionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &SessionStore{
		db:     db,
		logger: log.With(slog.String("component", "session_store")),
	}
}

// Ensure SessionStore implements store.SessionStore interface
var _ store.SessionStore = (*SessionStore)(nil)

// Create implements store.SessionStore.Create
func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO sessions (token, user_id, issued_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, session.Token, session.UserID, session.IssuedAt)
	if err != nil {
		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("user_id", session.UserID.String()))
		return MapError(err)
	}

	log.Info("session issued", slog.String("user_id", session.UserID.String()))
	return nil
}

// GetByToken implements store.SessionStore.GetByToken
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT token, user_id, issued_at
		FROM sessions
		WHERE token = $1
	`

	var session domain.Session
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.IssuedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get session by token", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &session, nil
}

// Delete implements store.SessionStore.Delete
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		log.Error("failed to delete session", slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrSessionNotFound); err != nil {
		return err
	}

	log.Info("session revoked")
	return nil
}
