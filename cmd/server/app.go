package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tenantry/contacts-api/internal/config"
	"github.com/tenantry/contacts-api/internal/platform/postgres"
	"github.com/tenantry/contacts-api/internal/service"
	"github.com/tenantry/contacts-api/internal/service/auth"
	"github.com/tenantry/contacts-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	sessionStore store.SessionStore
	contactStore store.ContactStore
	addressStore store.AddressStore

	// Services
	sessionService auth.SessionService
	userService    service.UserService
	contactService service.ContactService
	addressService service.AddressService
}

// newApplication creates a new application instance with all dependencies
// initialized. The configuration, logger and database connection must be
// established before wiring.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	// Stores
	app.userStore = postgres.NewUserStore(db, log)
	app.sessionStore = postgres.NewSessionStore(db, log)
	app.contactStore = postgres.NewContactStore(db, log)
	app.addressStore = postgres.NewAddressStore(db, log)

	// Auth primitives
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	verifier := auth.NewBcryptVerifier()
	tokens := auth.NewRandomTokenGenerator()

	// Services
	app.sessionService = auth.NewSessionService(app.sessionStore, app.userStore, tokens, log)
	app.userService = service.NewUserService(app.userStore, hasher, verifier, db, log)
	app.contactService = service.NewContactService(app.contactStore, log)
	app.addressService = service.NewAddressService(app.addressStore, log)

	log.Info("application initialized")
	return app, nil
}

// Run starts the application server and blocks until it shuts down.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
