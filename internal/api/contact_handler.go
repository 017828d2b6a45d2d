package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tenantry/contacts-api/internal/api/shared"
	"github.com/tenantry/contacts-api/internal/service"
	"github.com/tenantry/contacts-api/internal/store"
)

// ContactHandler handles contact-related HTTP requests.
type ContactHandler struct {
	contacts service.ContactService
	logger   *slog.Logger
}

// NewContactHandler creates a new ContactHandler with the given dependencies.
func NewContactHandler(contacts service.ContactService, log *slog.Logger) *ContactHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ContactHandler{
		contacts: contacts,
		logger:   log.With(slog.String("component", "contact_handler")),
	}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	contact, err := h.contacts.Create(r.Context(), user.ID, service.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, contactToResponse(contact))
}

// Get handles GET /api/contacts/{contactId}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := requireUserAndPathUUID(w, r, "contactId")
	if !ok {
		return
	}

	contact, err := h.contacts.Get(r.Context(), user.ID, contactID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Update handles PUT /api/contacts/{contactId}. The request body replaces
// every writable field; optional fields left out become null.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := requireUserAndPathUUID(w, r, "contactId")
	if !ok {
		return
	}

	var req ContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	contact, err := h.contacts.Update(r.Context(), user.ID, contactID, service.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, contactToResponse(contact))
}

// Delete handles DELETE /api/contacts/{contactId}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := requireUserAndPathUUID(w, r, "contactId")
	if !ok {
		return
	}

	if err := h.contacts.Delete(r.Context(), user.ID, contactID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, true)
}

// Search handles GET /api/contacts. All filters are optional; paging
// defaults to page 1, size 10. The paging metadata always reflects the
// full match count, so an out-of-range page comes back empty with the
// true total_page.
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	filter := store.ContactFilter{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
		Phone: r.URL.Query().Get("phone"),
		Page:  1,
		Size:  store.DefaultPageSize,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page")
			return
		}
		filter.Page = page
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > store.MaxPageSize {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid size")
			return
		}
		filter.Size = size
	}

	page, err := h.contacts.Search(r.Context(), user.ID, filter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithPage(w, r, http.StatusOK, contactsToResponse(page.Contacts), shared.Paging{
		CurrentPage: page.Page,
		Size:        page.Size,
		TotalPage:   page.TotalPages,
	})
}
