// Package main implements the entry point for the contacts API server:
// configuration loading, logging setup, database connection, dependency
// wiring and the HTTP listener.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/tenantry/contacts-api/internal/config"
	"github.com/tenantry/contacts-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run database migrations: up, down or status")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("error closing database connection", "error", err)
		}
	}()

	if migrateCmd != "" {
		return runMigrations(db, migrateCmd, appLogger)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}
