package api

import (
	"log/slog"
	"net/http"

	"github.com/tenantry/contacts-api/internal/api/shared"
	"github.com/tenantry/contacts-api/internal/service"
)

// AddressHandler handles HTTP requests for the addresses of a contact.
type AddressHandler struct {
	addresses service.AddressService
	logger    *slog.Logger
}

// NewAddressHandler creates a new AddressHandler with the given dependencies.
func NewAddressHandler(addresses service.AddressService, log *slog.Logger) *AddressHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AddressHandler{
		addresses: addresses,
		logger:    log.With(slog.String("component", "address_handler")),
	}
}

// Create handles POST /api/contacts/{contactId}/addresses.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := requireUserAndPathUUID(w, r, "contactId")
	if !ok {
		return
	}

	var req AddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	address, err := h.addresses.Create(r.Context(), user.ID, contactID, service.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, addressToResponse(address))
}

// List handles GET /api/contacts/{contactId}/addresses.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := requireUserAndPathUUID(w, r, "contactId")
	if !ok {
		return
	}

	addresses, err := h.addresses.List(r.Context(), user.ID, contactID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressesToResponse(addresses))
}

// Get handles GET /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := requireUserAndPathUUID(w, r, "contactId")
	if !ok {
		return
	}
	addressID, err := pathUUID(r, "addressId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	address, err := h.addresses.Get(r.Context(), user.ID, contactID, addressID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Update handles PUT /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := requireUserAndPathUUID(w, r, "contactId")
	if !ok {
		return
	}
	addressID, err := pathUUID(r, "addressId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	address, err := h.addresses.Update(r.Context(), user.ID, contactID, addressID, service.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, addressToResponse(address))
}

// Delete handles DELETE /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, contactID, ok := requireUserAndPathUUID(w, r, "contactId")
	if !ok {
		return
	}
	addressID, err := pathUUID(r, "addressId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.addresses.Delete(r.Context(), user.ID, contactID, addressID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, true)
}
