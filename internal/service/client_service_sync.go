// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-shopping-sync/internal/adapter"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
	"github.com/MKhiriev/go-shopping-sync/models"
)

const syncFlightKey = "sync"

type clientSyncService struct {
	storage   store.LocalStorage
	collector ChangeCollector
	adapter   adapter.ServerAdapter

	flight singleflight.Group
	state  atomic.Int32

	logger *logger.Logger
}

// NewClientSyncService creates the client sync orchestrator. It collects
// changes from storage, sends them through serverAdapter and applies the
// server state back to storage.
func NewClientSyncService(storage store.LocalStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		storage:   storage,
		collector: NewChangeCollector(storage),
		adapter:   serverAdapter,
		logger:    logger,
	}
}

// PerformSync implements [ClientSyncService].
func (s *clientSyncService) PerformSync(ctx context.Context) bool {
	return s.Sync(ctx) == nil
}

// Sync implements [ClientSyncService].
func (s *clientSyncService) Sync(ctx context.Context) error {
	_, err, shared := s.flight.Do(syncFlightKey, func() (any, error) {
		return nil, s.attempt(ctx)
	})
	if shared {
		logger.FromContext(ctx).Debug().
			Str("func", "clientSyncService.Sync").
			Msg("joined the sync attempt already in flight")
	}
	return err
}

// State implements [ClientSyncService].
func (s *clientSyncService) State() SyncState {
	return SyncState(s.state.Load())
}

func (s *clientSyncService) setState(state SyncState) {
	s.state.Store(int32(state))
}

// attempt runs one synchronization. Local state is written only in the
// final transaction, so any earlier failure leaves it untouched.
func (s *clientSyncService) attempt(ctx context.Context) (err error) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSyncPanicked, r)
		}
		s.setState(SyncStateIdle)
		if err != nil {
			log.Err(err).
				Str("func", "clientSyncService.attempt").
				Str("failure", syncFailureKind(err)).
				Msg("sync attempt failed, local state left unchanged")
		}
	}()

	s.setState(SyncStateCollectingLocal)
	since, err := s.readCursor(ctx)
	if err != nil {
		return err
	}
	req, err := s.collector.Collect(ctx, since)
	if err != nil {
		return fmt.Errorf("collect local changes: %w", err)
	}

	s.setState(SyncStateTransmitting)
	resp, err := s.adapter.Sync(ctx, req)
	if err != nil {
		return fmt.Errorf("transmit change-set: %w", err)
	}

	s.setState(SyncStateAwaitingResponse)
	if resp.ErrorMessage != "" {
		return fmt.Errorf("%w: %s", ErrServerReported, resp.ErrorMessage)
	}

	s.setState(SyncStateApplyingServerChanges)
	if err = s.applyAndAdvance(ctx, req, resp); err != nil {
		return err
	}

	log.Info().
		Str("func", "clientSyncService.attempt").
		Int("sent_items", len(req.UpdatedItems)).
		Int("sent_deletions", len(req.DeletedItemIDs)).
		Int("received_items", len(resp.ServerUpdatesListItems)).
		Time("cursor", resp.ServerSyncTimestamp).
		Msg("sync attempt succeeded")

	return nil
}

// readCursor returns the stored cursor time, or the zero time when the
// client never synced.
func (s *clientSyncService) readCursor(ctx context.Context) (time.Time, error) {
	cursor, err := s.storage.Repositories().Cursor.GetCursor(ctx)
	if errors.Is(err, store.ErrCursorNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read sync cursor: %w", err)
	}

	return cursor.Time(), nil
}

// applyAndAdvance writes the server state to the local store in one
// transaction: categories, stores and user lists before the list items that
// reference them, then the pending deletion cleanup and the cursor.
func (s *clientSyncService) applyAndAdvance(ctx context.Context, req models.SyncRequest, resp models.SyncResponse) error {
	log := logger.FromContext(ctx)

	err := s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		if err := repos.Categories.Upsert(ctx, resp.ServerUpdatesCategories...); err != nil {
			return fmt.Errorf("apply categories: %w", err)
		}
		if err := repos.Stores.Upsert(ctx, resp.ServerUpdatesStores...); err != nil {
			return fmt.Errorf("apply stores: %w", err)
		}
		if err := repos.UserLists.Upsert(ctx, resp.ServerUpdatesUserLists...); err != nil {
			return fmt.Errorf("apply user lists: %w", err)
		}

		if err := repos.PendingDeletions.RemovePendingDeletions(ctx, req.DeletedItemIDs...); err != nil {
			return fmt.Errorf("clear sent deletions: %w", err)
		}
		// items deleted locally while the request was in flight stay deleted
		pending, err := repos.PendingDeletions.GetPendingDeletionIDs(ctx)
		if err != nil {
			return fmt.Errorf("read pending deletions: %w", err)
		}
		if err = repos.ListItems.UpsertListItems(ctx, withoutIDs(resp.ServerUpdatesListItems, pending)...); err != nil {
			return fmt.Errorf("apply list items: %w", err)
		}

		s.setState(SyncStateAdvancingCursor)
		return s.advanceCursor(ctx, repos.Cursor, resp.ServerSyncTimestamp)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalApply, err)
	}

	if len(resp.ConfirmedDeletions) > 0 {
		log.Debug().
			Str("func", "clientSyncService.applyAndAdvance").
			Int("confirmed_deletions", len(resp.ConfirmedDeletions)).
			Msg("server confirmed deletions")
	}

	return nil
}

// advanceCursor stores serverTime unless it is older than the stored cursor.
func (s *clientSyncService) advanceCursor(ctx context.Context, cursors store.CursorRepository, serverTime time.Time) error {
	current, err := cursors.GetCursor(ctx)
	switch {
	case errors.Is(err, store.ErrCursorNotFound):
	case err != nil:
		return fmt.Errorf("read sync cursor: %w", err)
	case serverTime.Before(current.Time()):
		logger.FromContext(ctx).Warn().
			Str("func", "clientSyncService.advanceCursor").
			Time("stored_cursor", current.Time()).
			Time("server_sync_timestamp", serverTime).
			Msg("server timestamp is older than the stored cursor, keeping the cursor")
		return nil
	}

	if err = cursors.SetCursor(ctx, models.NewCursor(serverTime)); err != nil {
		return fmt.Errorf("store sync cursor: %w", err)
	}
	return nil
}

func withoutIDs(items []models.ListItem, ids []uuid.UUID) []models.ListItem {
	if len(ids) == 0 {
		return items
	}

	skip := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}

	kept := make([]models.ListItem, 0, len(items))
	for _, item := range items {
		if _, ok := skip[item.ID]; !ok {
			kept = append(kept, item)
		}
	}
	return kept
}

// syncFailureKind names the failure category of a sync error for logs.
func syncFailureKind(err error) string {
	switch {
	case errors.Is(err, ErrSyncPanicked):
		return "panic"
	case errors.Is(err, adapter.ErrDecodeResponse):
		return "decode"
	case errors.Is(err, adapter.ErrTransport):
		return "transport"
	case errors.Is(err, ErrServerReported):
		return "server_reported"
	case errors.Is(err, ErrLocalApply):
		return "local_apply"
	default:
		return "local_read"
	}
}
