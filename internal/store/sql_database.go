package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/migrations"
)

// DB is a database/sql connection pool together with the driver specific
// pieces the repositories need: the statement builder placeholder format,
// the row locking clause and the error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// queryer is implemented by both *sql.DB and *sql.Tx, so repositories can run
// either on the pool or inside a transaction.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewConnect opens a connection for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the server schema and seed data.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// MigrateClient applies the client local store schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// IsRetryable reports whether err is a transient storage failure.
func (db *DB) IsRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// lockClause returns the row locking suffix for SELECTs that precede an
// overwrite. SQLite serializes writers, so it needs none.
func (db *DB) lockClause() string {
	if db.driver == config.DriverPostgres {
		return "FOR UPDATE"
	}
	return ""
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}
