package api

import (
	"log/slog"
	"net/http"

	"github.com/tenantry/contacts-api/internal/api/shared"
	"github.com/tenantry/contacts-api/internal/service"
	"github.com/tenantry/contacts-api/internal/service/auth"
)

// UserHandler handles account and session related API requests.
type UserHandler struct {
	users    service.UserService
	sessions auth.SessionService
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users service.UserService, sessions auth.SessionService, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		users:    users,
		sessions: sessions,
		logger:   log.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	session, err := h.sessions.Issue(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to issue session",
			"error", err,
			"user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create session")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, LoginResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Name:     user.Name,
		Token:    session.Token,
	})
}

// Current handles GET /api/users/current.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userToResponse(user))
}

// Update handles PATCH /api/users/current.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Name == nil && req.Password == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Nothing to update")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	updated, err := h.users.Update(r.Context(), user.ID, service.UserUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, userToResponse(updated))
}

// Logout handles DELETE /api/users/current. It revokes exactly the
// session token the request presented; the token stops resolving the
// moment the row is gone, so a repeated logout with the same token is a
// 401 at the middleware.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionTokenFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := h.sessions.Revoke(r.Context(), token); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, true)
}
