package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
	"github.com/MKhiriev/go-shopping-sync/models"
)

type changeCollector struct {
	storage store.LocalStorage
}

// NewChangeCollector creates a [ChangeCollector] reading from storage.
func NewChangeCollector(storage store.LocalStorage) ChangeCollector {
	return &changeCollector{storage: storage}
}

// Collect implements [ChangeCollector]. Items and pending deletions are read
// in one transaction so an item deleted meanwhile is never sent both ways.
func (c *changeCollector) Collect(ctx context.Context, since time.Time) (models.SyncRequest, error) {
	var (
		items   []models.ListItem
		deleted []uuid.UUID
	)

	err := c.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		var err error
		if items, err = repos.ListItems.GetAllListItems(ctx); err != nil {
			return fmt.Errorf("read local list items: %w", err)
		}
		if deleted, err = repos.PendingDeletions.GetPendingDeletionIDs(ctx); err != nil {
			return fmt.Errorf("read pending deletions: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.SyncRequest{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "changeCollector.Collect").
		Int("updated_items", len(items)).
		Int("deleted_item_ids", len(deleted)).
		Time("since", since).
		Msg("local change-set collected")

	return models.NewSyncRequest(items, deleted, since), nil
}
