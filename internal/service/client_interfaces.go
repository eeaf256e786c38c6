package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/models"
)

// ChangeCollector builds the change-set a client sends to the server.
type ChangeCollector interface {
	// Collect returns every local list item, the ids deleted locally and not
	// yet confirmed, and since as the request cursor. Collections are never
	// nil.
	Collect(ctx context.Context, since time.Time) (models.SyncRequest, error)
}

// ClientSyncService runs synchronization attempts against the server.
type ClientSyncService interface {
	// PerformSync runs one attempt and reports whether it fully succeeded.
	// It never panics and never returns an error; failures are logged.
	// Concurrent calls share the attempt already in flight.
	PerformSync(ctx context.Context) bool

	// Sync is PerformSync that returns the failure cause.
	Sync(ctx context.Context) error

	// State returns the current step of the attempt in flight, or
	// [SyncStateIdle].
	State() SyncState
}

// ClientListService manages the shopping list in the local store. Changes
// reach the server on the next synchronization.
type ClientListService interface {
	// AddListItem stores a new item, minting a v7 id when item.ID is zero,
	// and returns the stored item.
	AddListItem(ctx context.Context, item models.ListItem) (models.ListItem, error)
	// UpdateListItem overwrites an existing item or returns
	// [ErrListItemNotFound].
	UpdateListItem(ctx context.Context, item models.ListItem) error
	// DeleteListItem removes the item and records the id as a pending
	// deletion in one transaction. Deleting an absent item is a no-op.
	DeleteListItem(ctx context.Context, id uuid.UUID) error

	GetListItem(ctx context.Context, id uuid.UUID) (models.ListItem, error)
	GetAllListItems(ctx context.Context) ([]models.ListItem, error)
	// GetActiveListItems returns items that are active and not archived.
	GetActiveListItems(ctx context.Context) ([]models.ListItem, error)

	GetCategories(ctx context.Context) ([]models.Category, error)
	GetStores(ctx context.Context) ([]models.Store, error)
	GetUserLists(ctx context.Context) ([]models.UserList, error)
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls PerformSync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
