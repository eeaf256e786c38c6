package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/models"
)

// SyncLoggingService logs the size, outcome and duration of every
// reconciliation.
type SyncLoggingService struct {
	inner SyncService
}

func NewSyncLoggingService() SyncServiceWrapper {
	return &SyncLoggingService{}
}

func (l *SyncLoggingService) Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	log.Debug().
		Str("func", "SyncLoggingService.Reconcile").
		Int("updated_items", len(req.UpdatedItems)).
		Int("deleted_item_ids", len(req.DeletedItemIDs)).
		Time("last_sync_timestamp", req.LastSyncTimestamp).
		Msg("reconciliation started")

	resp, err := l.inner.Reconcile(ctx, req)

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("func", "SyncLoggingService.Reconcile").
		Dur("duration", time.Since(start)).
		Bool("success", err == nil).
		Msg("reconciliation finished")

	return resp, err
}

func (l *SyncLoggingService) Wrap(wrapped SyncService) SyncService {
	l.inner = wrapped
	return l
}
