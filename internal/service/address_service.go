package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tenantry/contacts-api/internal/domain"
	"github.com/tenantry/contacts-api/internal/store"
)

// AddressInput carries the writable address fields. Optional fields are
// nil when absent; updates replace all of them.
type AddressInput struct {
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode *string
}

// AddressService provides CRUD over the addresses of a contact, enforcing
// the ownership chain address -> contact -> user on every operation.
type AddressService interface {
	Create(ctx context.Context, userID, contactID uuid.UUID, input AddressInput) (*domain.Address, error)
	Get(ctx context.Context, userID, contactID, addressID uuid.UUID) (*domain.Address, error)
	List(ctx context.Context, userID, contactID uuid.UUID) ([]*domain.Address, error)
	Update(ctx context.Context, userID, contactID, addressID uuid.UUID, input AddressInput) (*domain.Address, error)
	Delete(ctx context.Context, userID, contactID, addressID uuid.UUID) error
}

// AddressServiceImpl implements the AddressService interface.
type AddressServiceImpl struct {
	addresses store.AddressStore
	logger    *slog.Logger
}

// NewAddressService creates a new AddressService.
func NewAddressService(addresses store.AddressStore, log *slog.Logger) *AddressServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &AddressServiceImpl{
		addresses: addresses,
		logger:    log.With(slog.String("component", "address_service")),
	}
}

// Ensure AddressServiceImpl implements AddressService
var _ AddressService = (*AddressServiceImpl)(nil)

// Create implements AddressService.Create
func (s *AddressServiceImpl) Create(
	ctx context.Context,
	userID, contactID uuid.UUID,
	input AddressInput,
) (*domain.Address, error) {
	address, err := domain.NewAddress(
		contactID,
		input.Street,
		input.City,
		input.Province,
		input.Country,
		input.PostalCode,
	)
	if err != nil {
		s.logger.Debug("address validation failed during create",
			"error", err,
			"contact_id", contactID)
		return nil, err
	}

	if err := s.addresses.Create(ctx, userID, address); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to create address",
			"error", err,
			"contact_id", contactID)
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return address, nil
}

// Get implements AddressService.Get
func (s *AddressServiceImpl) Get(
	ctx context.Context,
	userID, contactID, addressID uuid.UUID,
) (*domain.Address, error) {
	address, err := s.addresses.Get(ctx, userID, contactID, addressID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to get address",
			"error", err,
			"address_id", addressID)
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return address, nil
}

// List implements AddressService.List
func (s *AddressServiceImpl) List(
	ctx context.Context,
	userID, contactID uuid.UUID,
) ([]*domain.Address, error) {
	addresses, err := s.addresses.List(ctx, userID, contactID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to list addresses",
			"error", err,
			"contact_id", contactID)
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

// Update implements AddressService.Update
func (s *AddressServiceImpl) Update(
	ctx context.Context,
	userID, contactID, addressID uuid.UUID,
	input AddressInput,
) (*domain.Address, error) {
	address := &domain.Address{
		ID:         addressID,
		ContactID:  contactID,
		Street:     input.Street,
		City:       input.City,
		Province:   input.Province,
		Country:    input.Country,
		PostalCode: input.PostalCode,
		UpdatedAt:  time.Now().UTC(),
	}

	if err := address.Validate(); err != nil {
		s.logger.Debug("address validation failed during update",
			"error", err,
			"address_id", addressID)
		return nil, err
	}

	if err := s.addresses.Update(ctx, userID, address); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to update address",
			"error", err,
			"address_id", addressID)
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	return s.Get(ctx, userID, contactID, addressID)
}

// Delete implements AddressService.Delete
func (s *AddressServiceImpl) Delete(
	ctx context.Context,
	userID, contactID, addressID uuid.UUID,
) error {
	if err := s.addresses.Delete(ctx, userID, contactID, addressID); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		s.logger.Error("failed to delete address",
			"error", err,
			"address_id", addressID)
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}
