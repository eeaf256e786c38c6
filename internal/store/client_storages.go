package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// LocalStorage is the SQLite-backed shopping list store on the client
	// device, including the sync cursor and pending deletions.
	LocalStorage LocalStorage

	storage *SQLStorage
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.MigrateClient].
//  3. Wraps the connection in a [SQLStorage].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storage := NewSQLStorage(db)
	return &ClientStorages{LocalStorage: storage, storage: storage}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.storage.Close()
}
