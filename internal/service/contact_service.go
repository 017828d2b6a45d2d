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

// ContactInput carries the writable contact fields. Optional fields are
// nil when absent; updates replace all of them.
type ContactInput struct {
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
}

// ContactPage is one page of search results plus the paging metadata the
// API reports alongside it.
type ContactPage struct {
	Contacts   []*domain.Contact
	Page       int
	Size       int
	TotalItems int64
	TotalPages int
}

// ContactService provides CRUD and paginated search over contacts, scoped
// to the owning user. A contact that does not exist and a contact owned
// by someone else are both reported as store.ErrContactNotFound.
type ContactService interface {
	Create(ctx context.Context, userID uuid.UUID, input ContactInput) (*domain.Contact, error)
	Get(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error)
	Update(ctx context.Context, userID, contactID uuid.UUID, input ContactInput) (*domain.Contact, error)
	Delete(ctx context.Context, userID, contactID uuid.UUID) error
	Search(ctx context.Context, userID uuid.UUID, filter store.ContactFilter) (*ContactPage, error)
}

// ContactServiceImpl implements the ContactService interface.
type ContactServiceImpl struct {
	contacts store.ContactStore
	logger   *slog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(contacts store.ContactStore, log *slog.Logger) *ContactServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &ContactServiceImpl{
		contacts: contacts,
		logger:   log.With(slog.String("component", "contact_service")),
	}
}

// Ensure ContactServiceImpl implements ContactService
var _ ContactService = (*ContactServiceImpl)(nil)

// Create implements ContactService.Create
func (s *ContactServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	input ContactInput,
) (*domain.Contact, error) {
	contact, err := domain.NewContact(userID, input.FirstName, input.LastName, input.Email, input.Phone)
	if err != nil {
		s.logger.Debug("contact validation failed during create",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		s.logger.Error("failed to create contact",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// Get implements ContactService.Get
func (s *ContactServiceImpl) Get(
	ctx context.Context,
	userID, contactID uuid.UUID,
) (*domain.Contact, error) {
	contact, err := s.contacts.Get(ctx, userID, contactID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to get contact",
			"error", err,
			"contact_id", contactID)
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// Update implements ContactService.Update
// The update is a full replace of the writable fields: an optional field
// omitted from the input ends up null, not preserved.
func (s *ContactServiceImpl) Update(
	ctx context.Context,
	userID, contactID uuid.UUID,
	input ContactInput,
) (*domain.Contact, error) {
	contact := &domain.Contact{
		ID:        contactID,
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		UpdatedAt: time.Now().UTC(),
	}

	if err := contact.Validate(); err != nil {
		s.logger.Debug("contact validation failed during update",
			"error", err,
			"contact_id", contactID)
		return nil, err
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		s.logger.Error("failed to update contact",
			"error", err,
			"contact_id", contactID)
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	// Re-read so the response carries the stored timestamps.
	return s.Get(ctx, userID, contactID)
}

// Delete implements ContactService.Delete
func (s *ContactServiceImpl) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	if err := s.contacts.Delete(ctx, userID, contactID); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		s.logger.Error("failed to delete contact",
			"error", err,
			"contact_id", contactID)
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// Search implements ContactService.Search
func (s *ContactServiceImpl) Search(
	ctx context.Context,
	userID uuid.UUID,
	filter store.ContactFilter,
) (*ContactPage, error) {
	filter.Normalize()

	contacts, total, err := s.contacts.Search(ctx, userID, filter)
	if err != nil {
		s.logger.Error("failed to search contacts",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	// Zero matches means zero pages; a single partial page still counts
	// as one.
	totalPages := int((total + int64(filter.Size) - 1) / int64(filter.Size))

	return &ContactPage{
		Contacts:   contacts,
		Page:       filter.Page,
		Size:       filter.Size,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}
