package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/platform/logger"
	"github.com/tenantry/contacts-api/internal/store"
)

// AddressStore implements the store.AddressStore interface using a
// PostgreSQL database as the storage backend. Every statement joins
// through the contacts table, so the ownership chain address -> contact
// -> user is enforced in a single round trip.
type AddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAddressStore creates a new PostgreSQL implementation of the
// AddressStore interface. If logger is nil, the process default logger is
// used.
func NewAddressStore(db store.DBTX, log *slog.Logger) *AddressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AddressStore{
		db:     db,
		logger: log.With(slog.String("component", "address_store")),
	}
}

// Ensure AddressStore implements store.AddressStore interface
var _ store.AddressStore = (*AddressStore)(nil)

// Create implements store.AddressStore.Create
// The INSERT is gated on an ownership check of the target contact, so an
// insert against a foreign or missing contact affects zero rows.
func (s *AddressStore) Create(ctx context.Context, userID uuid.UUID, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during create",
			slog.String("error", err.Error()),
			slog.String("address_id", address.ID.String()))
		return err
	}

	query := `
		INSERT INTO addresses (id, contact_id, street, city, province, country, postal_code, created_at, updated_at)
		SELECT $1, c.id, $3, $4, $5, $6, $7, $8, $9
		FROM contacts c
		WHERE c.id = $2 AND c.user_id = $10
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		address.ID,
		address.ContactID,
		nullString(address.Street),
		nullString(address.City),
		nullString(address.Province),
		address.Country,
		nullString(address.PostalCode),
		address.CreatedAt,
		address.UpdatedAt,
		userID,
	)

	if err != nil {
		log.Error("failed to create address",
			slog.String("error", err.Error()),
			slog.String("address_id", address.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		return err
	}

	log.Info("address created",
		slog.String("address_id", address.ID.String()),
		slog.String("contact_id", address.ContactID.String()))
	return nil
}

// Get implements store.AddressStore.Get
func (s *AddressStore) Get(
	ctx context.Context,
	userID, contactID, addressID uuid.UUID,
) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.id, a.contact_id, a.street, a.city, a.province, a.country, a.postal_code, a.created_at, a.updated_at
		FROM addresses a
		JOIN contacts c ON c.id = a.contact_id
		WHERE a.id = $1 AND a.contact_id = $2 AND c.user_id = $3
	`

	address, err := scanAddress(s.db.QueryRowContext(ctx, query, addressID, contactID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAddressNotFound
		}
		log.Error("failed to get address",
			slog.String("error", err.Error()),
			slog.String("address_id", addressID.String()))
		return nil, MapError(err)
	}

	return address, nil
}

// List implements store.AddressStore.List
func (s *AddressStore) List(
	ctx context.Context,
	userID, contactID uuid.UUID,
) ([]*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The contact must resolve first so that listing a foreign contact's
	// addresses is a 404, not an empty list.
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM contacts WHERE id = $1 AND user_id = $2)`,
		contactID,
		userID,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check contact ownership", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	if !exists {
		return nil, store.ErrContactNotFound
	}

	query := `
		SELECT id, contact_id, street, city, province, country, postal_code, created_at, updated_at
		FROM addresses
		WHERE contact_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, contactID)
	if err != nil {
		log.Error("failed to list addresses", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	addresses := []*domain.Address{}
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			log.Error("failed to scan address row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return addresses, nil
}

// Update implements store.AddressStore.Update
func (s *AddressStore) Update(ctx context.Context, userID uuid.UUID, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during update",
			slog.String("error", err.Error()),
			slog.String("address_id", address.ID.String()))
		return err
	}

	query := `
		UPDATE addresses a
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5, updated_at = $6
		FROM contacts c
		WHERE a.id = $7 AND a.contact_id = $8 AND c.id = a.contact_id AND c.user_id = $9
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		nullString(address.Street),
		nullString(address.City),
		nullString(address.Province),
		address.Country,
		nullString(address.PostalCode),
		address.UpdatedAt,
		address.ID,
		address.ContactID,
		userID,
	)

	if err != nil {
		log.Error("failed to update address",
			slog.String("error", err.Error()),
			slog.String("address_id", address.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Info("address updated", slog.String("address_id", address.ID.String()))
	return nil
}

// Delete implements store.AddressStore.Delete
func (s *AddressStore) Delete(ctx context.Context, userID, contactID, addressID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM addresses a
		USING contacts c
		WHERE a.id = $1 AND a.contact_id = $2 AND c.id = a.contact_id AND c.user_id = $3
	`
	result, err := s.db.ExecContext(ctx, query, addressID, contactID, userID)
	if err != nil {
		log.Error("failed to delete address",
			slog.String("error", err.Error()),
			slog.String("address_id", addressID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Info("address deleted", slog.String("address_id", addressID.String()))
	return nil
}

func scanAddress(row rowScanner) (*domain.Address, error) {
	var (
		address    domain.Address
		street     sql.NullString
		city       sql.NullString
		province   sql.NullString
		postalCode sql.NullString
	)

	err := row.Scan(
		&address.ID,
		&address.ContactID,
		&street,
		&city,
		&province,
		&address.Country,
		&postalCode,
		&address.CreatedAt,
		&address.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	address.Street = stringPtr(street)
	address.City = stringPtr(city)
	address.Province = stringPtr(province)
	address.PostalCode = stringPtr(postalCode)
	return &address, nil
}
