package main

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// runMigrations executes the given goose command (up, down or status)
// against the embedded migration files.
func runMigrations(db *sql.DB, command string, log *slog.Logger) error {
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	log.Info("running migrations", "command", command)

	var err error
	switch command {
	case "up":
		err = goose.Up(db, "migrations")
	case "down":
		err = goose.Down(db, "migrations")
	case "status":
		err = goose.Status(db, "migrations")
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}

	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Info("migrations completed", "command", command)
	return nil
}
