// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/models"
)

// SQLStorage implements [ServerStorage] and [LocalStorage] on top of a [DB].
type SQLStorage struct {
	db    *DB
	repos *Repositories
}

// NewSQLStorage wraps db.
func NewSQLStorage(db *DB) *SQLStorage {
	return &SQLStorage{
		db:    db,
		repos: newRepositories(db.DB, db),
	}
}

// Repositories implements [LocalStorage].
func (s *SQLStorage) Repositories() *Repositories {
	return s.repos
}

// IsRetryable implements [ServerStorage].
func (s *SQLStorage) IsRetryable(err error) bool {
	return s.db.IsRetryable(err)
}

// WithinTx implements [ServerStorage] and [LocalStorage].
func (s *SQLStorage) WithinTx(ctx context.Context, fn TxFunc) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "SQLStorage.WithinTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, newRepositories(tx, s.db)); err != nil {
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "SQLStorage.WithinTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// Snapshot implements [ServerStorage].
func (s *SQLStorage) Snapshot(ctx context.Context) (models.Snapshot, error) {
	var snapshot models.Snapshot

	err := s.WithinTx(ctx, func(ctx context.Context, repos *Repositories) error {
		var err error
		if snapshot.Categories, err = repos.Categories.GetAll(ctx); err != nil {
			return fmt.Errorf("read categories: %w", err)
		}
		if snapshot.Stores, err = repos.Stores.GetAll(ctx); err != nil {
			return fmt.Errorf("read stores: %w", err)
		}
		if snapshot.UserLists, err = repos.UserLists.GetAll(ctx); err != nil {
			return fmt.Errorf("read user lists: %w", err)
		}
		if snapshot.ListItems, err = repos.ListItems.GetAllListItems(ctx); err != nil {
			return fmt.Errorf("read list items: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Snapshot{}, err
	}

	return snapshot, nil
}

// Close closes the underlying connection pool.
func (s *SQLStorage) Close() error {
	return s.db.Close()
}

// Storages groups the server-side storage.
type Storages struct {
	SyncStorage ServerStorage

	storage *SQLStorage
}

// NewStorages connects to the configured server database, applies
// migrations and returns the server storage.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storage := NewSQLStorage(db)
	return &Storages{SyncStorage: storage, storage: storage}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.storage.Close()
}
