package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tenantry/contacts-api/internal/api"
	apiMiddleware "github.com/tenantry/contacts-api/internal/api/middleware"
	"github.com/tenantry/contacts-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Create API handlers using the application's services
	userHandler := api.NewUserHandler(app.userService, app.sessionService, app.logger)
	contactHandler := api.NewContactHandler(app.contactService, app.logger)
	addressHandler := api.NewAddressHandler(app.addressService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.sessionService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User endpoints
			r.Get("/users/current", userHandler.Current)
			r.Patch("/users/current", userHandler.Update)
			r.Delete("/users/current", userHandler.Logout)

			// Contact endpoints
			r.Post("/contacts", contactHandler.Create)
			r.Get("/contacts", contactHandler.Search)
			r.Get("/contacts/{contactId}", contactHandler.Get)
			r.Put("/contacts/{contactId}", contactHandler.Update)
			r.Delete("/contacts/{contactId}", contactHandler.Delete)

			// Address endpoints (nested under contacts)
			r.Post("/contacts/{contactId}/addresses", addressHandler.Create)
			r.Get("/contacts/{contactId}/addresses", addressHandler.List)
			r.Get("/contacts/{contactId}/addresses/{addressId}", addressHandler.Get)
			r.Put("/contacts/{contactId}/addresses/{addressId}", addressHandler.Update)
			r.Delete("/contacts/{contactId}/addresses/{addressId}", addressHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := app.db.PingContext(req.Context()); err != nil {
			shared.RespondWithError(w, req, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		shared.RespondWithData(w, req, http.StatusOK, "OK")
	})

	return r
}
