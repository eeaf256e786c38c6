package service

import (
	"context"

	"github.com/MKhiriev/go-shopping-sync/models"
)

// SyncService reconciles a client change-set with the server store.
type SyncService interface {
	// Reconcile applies req inside one transaction and returns the complete
	// server state stamped with the server time. On failure the returned
	// response carries the error message and empty collections.
	Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// logging or validating.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService // returns a decorated SyncService applying additional behavior
}

// AppInfoService exposes build and version information of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
