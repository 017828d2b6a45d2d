package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/platform/logger"
	"github.com/tenantry/contacts-api/internal/store"
)

// ContactStore implements the store.ContactStore interface using a
// PostgreSQL database as the storage backend. Every query is scoped by
// the owning user ID, so cross-tenant rows are invisible rather than
// forbidden.
type ContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewContactStore creates a new PostgreSQL implementation of the
// ContactStore interface. If logger is nil, the process default logger is
// used.
func NewContactStore(db store.DBTX, log *slog.Logger) *ContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ContactStore{
		db:     db,
		logger: log.With(slog.String("component", "contact_store")),
	}
}

// Ensure ContactStore implements store.ContactStore interface
var _ store.ContactStore = (*ContactStore)(nil)

// Create implements store.ContactStore.Create
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return err
	}

	query := `
		INSERT INTO contacts (id, user_id, first_name, last_name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		contact.ID,
		contact.UserID,
		contact.FirstName,
		nullString(contact.LastName),
		nullString(contact.Email),
		nullString(contact.Phone),
		contact.CreatedAt,
		contact.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("owner does not exist for contact",
				slog.String("user_id", contact.UserID.String()))
			return fmt.Errorf("%w: user %s not found", store.ErrInvalidEntity, contact.UserID)
		}
		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return MapError(err)
	}

	log.Info("contact created",
		slog.String("contact_id", contact.ID.String()),
		slog.String("user_id", contact.UserID.String()))
	return nil
}

// Get implements store.ContactStore.Get
func (s *ContactStore) Get(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, first_name, last_name, email, phone, created_at, updated_at
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, contactID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contactID.String()))
		return nil, MapError(err)
	}

	return contact, nil
}

// Update implements store.ContactStore.Update
func (s *ContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during update",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return err
	}

	query := `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		contact.FirstName,
		nullString(contact.LastName),
		nullString(contact.Email),
		nullString(contact.Phone),
		contact.UpdatedAt,
		contact.ID,
		contact.UserID,
	)

	if err != nil {
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		return err
	}

	log.Info("contact updated", slog.String("contact_id", contact.ID.String()))
	return nil
}

// Delete implements store.ContactStore.Delete
func (s *ContactStore) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM contacts WHERE id = $1 AND user_id = $2`,
		contactID,
		userID,
	)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contactID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		return err
	}

	log.Info("contact deleted", slog.String("contact_id", contactID.String()))
	return nil
}

// Search implements store.ContactStore.Search
// The WHERE clause is assembled from the active filters only; the count
// query reuses it so the total always reflects the full match set, not
// the requested page.
func (s *ContactStore) Search(
	ctx context.Context,
	userID uuid.UUID,
	filter store.ContactFilter,
) ([]*domain.Contact, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	filter.Normalize()

	where := `WHERE user_id = $1`
	args := []any{userID}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where += fmt.Sprintf(
			" AND (first_name ILIKE $%d OR last_name ILIKE $%d)",
			len(args), len(args),
		)
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		where += fmt.Sprintf(" AND email ILIKE $%d", len(args))
	}
	if filter.Phone != "" {
		args = append(args, "%"+filter.Phone+"%")
		where += fmt.Sprintf(" AND phone ILIKE $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM contacts ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count contacts", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	listQuery := fmt.Sprintf(`
		SELECT id, user_id, first_name, last_name, email, phone, created_at, updated_at
		FROM contacts
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Size, filter.Offset())

	rows, err := s.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Error("failed to search contacts", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	contacts := []*domain.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			log.Error("failed to scan contact row", slog.String("error", err.Error()))
			return nil, 0, MapError(err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	log.Debug("contact search completed",
		slog.String("user_id", userID.String()),
		slog.Int("page_count", len(contacts)),
		slog.Int64("total", total))
	return contacts, total, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var (
		contact  domain.Contact
		lastName sql.NullString
		email    sql.NullString
		phone    sql.NullString
	)

	err := row.Scan(
		&contact.ID,
		&contact.UserID,
		&contact.FirstName,
		&lastName,
		&email,
		&phone,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	contact.LastName = stringPtr(lastName)
	contact.Email = stringPtr(email)
	contact.Phone = stringPtr(phone)
	return &contact, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
