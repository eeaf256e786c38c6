// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
	"github.com/MKhiriev/go-shopping-sync/models"
)

const defaultRetryDelay = 50 * time.Millisecond

// syncService is the server side reconciliation engine.
type syncService struct {
	storage store.ServerStorage

	policy      string
	maxAttempts int
	retryDelay  time.Duration
	now         func() time.Time

	logger *logger.Logger
}

// NewSyncService creates the reconciliation engine over storage. cfg selects
// the dangling reference policy and how many times a transaction failing
// with a retryable storage error is run.
func NewSyncService(storage store.ServerStorage, cfg config.Sync, logger *logger.Logger) SyncService {
	policy := cfg.DanglingReferences
	if policy == "" {
		policy = config.DanglingReferencesRepair
	}

	return &syncService{
		storage:     storage,
		policy:      policy,
		maxAttempts: max(cfg.MaxAttempts, 1),
		retryDelay:  defaultRetryDelay,
		now:         time.Now,
		logger:      logger,
	}
}

// Reconcile implements [SyncService].
//
// Deletions are applied before upserts, in one transaction. The snapshot is
// read after the commit and stamped with the current UTC time.
func (s *syncService) Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	var confirmed []uuid.UUID
	err := s.withRetry(ctx, "syncService.Reconcile", func() error {
		return s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
			var err error
			if confirmed, err = s.applyDeletions(ctx, repos.ListItems, req.DeletedItemIDs); err != nil {
				return err
			}
			return s.applyUpserts(ctx, repos, req.UpdatedItems)
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncService.Reconcile").
			Int("updated_items", len(req.UpdatedItems)).
			Int("deleted_item_ids", len(req.DeletedItemIDs)).
			Msg("reconciliation failed, transaction rolled back")
		return models.NewErrorSyncResponse(err.Error()), err
	}

	var snapshot models.Snapshot
	err = s.withRetry(ctx, "syncService.Reconcile", func() error {
		var err error
		snapshot, err = s.storage.Snapshot(ctx)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "syncService.Reconcile").Msg("failed to read server snapshot")
		err = fmt.Errorf("read server snapshot: %w", err)
		return models.NewErrorSyncResponse(err.Error()), err
	}

	resp := models.NewEmptySyncResponse()
	resp.ServerUpdatesCategories = append(resp.ServerUpdatesCategories, snapshot.Categories...)
	resp.ServerUpdatesStores = append(resp.ServerUpdatesStores, snapshot.Stores...)
	resp.ServerUpdatesUserLists = append(resp.ServerUpdatesUserLists, snapshot.UserLists...)
	resp.ServerUpdatesListItems = append(resp.ServerUpdatesListItems, snapshot.ListItems...)
	resp.ConfirmedDeletions = append(resp.ConfirmedDeletions, confirmed...)
	resp.ServerSyncTimestamp = s.now().UTC()

	log.Info().
		Str("func", "syncService.Reconcile").
		Int("updated_items", len(req.UpdatedItems)).
		Int("confirmed_deletions", len(resp.ConfirmedDeletions)).
		Int("snapshot_list_items", len(resp.ServerUpdatesListItems)).
		Time("server_sync_timestamp", resp.ServerSyncTimestamp).
		Msg("reconciliation committed")

	return resp, nil
}

// applyDeletions deletes every listed item that exists and returns their ids.
// Absent ids are skipped.
func (s *syncService) applyDeletions(ctx context.Context, items store.ListItemRepository, ids []uuid.UUID) ([]uuid.UUID, error) {
	log := logger.FromContext(ctx)

	confirmed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		deleted, err := items.DeleteListItem(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("delete list item %s: %w", id, err)
		}
		if !deleted {
			log.Warn().
				Str("func", "syncService.applyDeletions").
				Str("item_id", id.String()).
				Msg("list item to delete does not exist, skipping")
			continue
		}
		confirmed = append(confirmed, id)
	}

	return confirmed, nil
}

// applyUpserts creates absent items, repairing their references first, and
// overwrites present ones as a whole.
func (s *syncService) applyUpserts(ctx context.Context, repos *store.Repositories, items []models.ListItem) error {
	for _, item := range items {
		_, err := repos.ListItems.GetListItemForUpdate(ctx, item.ID)
		switch {
		case errors.Is(err, store.ErrRecordNotFound):
			if item, err = s.resolveReferences(ctx, repos, item); err != nil {
				return err
			}
			if err = repos.ListItems.UpsertListItems(ctx, item); err != nil {
				return fmt.Errorf("create list item %s: %w", item.ID, err)
			}
		case err != nil:
			return fmt.Errorf("look up list item %s: %w", item.ID, err)
		default:
			if err = repos.ListItems.UpdateListItem(ctx, item); err != nil {
				return fmt.Errorf("overwrite list item %s: %w", item.ID, err)
			}
		}
	}

	return nil
}

func (s *syncService) resolveReferences(ctx context.Context, repos *store.Repositories, item models.ListItem) (models.ListItem, error) {
	var err error

	if item.CategoryID, err = resolveReference(ctx, repos.Categories, s.policy, "category", item.ID, item.CategoryID); err != nil {
		return models.ListItem{}, err
	}
	if item.StoreID, err = resolveReference(ctx, repos.Stores, s.policy, "store", item.ID, item.StoreID); err != nil {
		return models.ListItem{}, err
	}
	if item.UserListID, err = resolveReference(ctx, repos.UserLists, s.policy, "user_list", item.ID, item.UserListID); err != nil {
		return models.ListItem{}, err
	}

	return item, nil
}

// resolveReference returns refID when it exists. Otherwise it fails under the
// reject policy or returns the first id of the table under the repair policy.
func resolveReference[T models.Reference](
	ctx context.Context,
	repo store.ReferenceRepository[T],
	policy, kind string,
	itemID, refID uuid.UUID,
) (uuid.UUID, error) {
	exists, err := repo.Exists(ctx, refID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check %s %s: %w", kind, refID, err)
	}
	if exists {
		return refID, nil
	}

	if policy == config.DanglingReferencesReject {
		return uuid.Nil, fmt.Errorf("%w: %s %s of list item %s", ErrDanglingReference, kind, refID, itemID)
	}

	replacement, err := repo.FirstID(ctx)
	if errors.Is(err, store.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrNoFallbackReference, err)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("find replacement %s: %w", kind, err)
	}

	logger.FromContext(ctx).Warn().
		Str("func", "syncService.resolveReferences").
		Str("item_id", itemID.String()).
		Str("reference", kind).
		Str("missing_id", refID.String()).
		Str("replacement_id", replacement.String()).
		Msg("dangling reference repaired")

	return replacement, nil
}

// withRetry runs fn until it succeeds, fails with an error the storage does
// not classify as retryable, or maxAttempts runs are used up.
func (s *syncService) withRetry(ctx context.Context, funcName string, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt >= s.maxAttempts || !s.storage.IsRetryable(err) {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", funcName).
			Int("attempt", attempt).
			Int("max_attempts", s.maxAttempts).
			Msg("retryable storage error, running the transaction again")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(s.retryDelay * time.Duration(attempt)):
		}
	}
}
