// Package migrations embeds the goose schema migrations of the server store
// (one set per supported driver) and of the client local store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

var errNilDB = errors.New("db is nil")

// Migrate applies the server schema and seed data for the given
// database/sql driver name ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	switch driver {
	case "pgx":
		return migrate(db, "pgx", "postgres")
	case "sqlite3":
		return migrate(db, "sqlite3", "sqlite")
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}
}

// MigrateClient applies the client local store schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, "sqlite3", "client")
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
