package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a storage error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ListItemRepository reads and writes list items.
type ListItemRepository interface {
	// GetListItem returns the item with id or [ErrRecordNotFound].
	GetListItem(ctx context.Context, id uuid.UUID) (models.ListItem, error)
	// GetListItemForUpdate is GetListItem that also locks the row until the
	// surrounding transaction ends, where the database supports it.
	GetListItemForUpdate(ctx context.Context, id uuid.UUID) (models.ListItem, error)
	GetAllListItems(ctx context.Context) ([]models.ListItem, error)
	// GetActiveListItems returns items that are active and not archived.
	GetActiveListItems(ctx context.Context) ([]models.ListItem, error)
	InsertListItem(ctx context.Context, item models.ListItem) error
	// UpdateListItem overwrites every field of an existing item or returns
	// [ErrRecordNotFound].
	UpdateListItem(ctx context.Context, item models.ListItem) error
	// UpsertListItems inserts absent items and overwrites present ones.
	UpsertListItems(ctx context.Context, items ...models.ListItem) error
	// DeleteListItem reports whether a row was deleted.
	DeleteListItem(ctx context.Context, id uuid.UUID) (bool, error)
}

// ReferenceRepository reads and writes one of the parent tables a list item
// points to: categories, stores or user lists.
type ReferenceRepository[T models.Reference] interface {
	GetAll(ctx context.Context) ([]T, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// FirstID returns the smallest id of the table or [ErrRecordNotFound]
	// when the table is empty.
	FirstID(ctx context.Context) (uuid.UUID, error)
	Upsert(ctx context.Context, records ...T) error
}

// CursorRepository stores the client synchronization cursor.
type CursorRepository interface {
	// GetCursor returns the stored cursor or [ErrCursorNotFound].
	GetCursor(ctx context.Context) (models.Cursor, error)
	SetCursor(ctx context.Context, cursor models.Cursor) error
}

// PendingDeletionRepository tracks list items deleted on the client and not
// yet confirmed by the server.
type PendingDeletionRepository interface {
	AddPendingDeletion(ctx context.Context, id uuid.UUID, at time.Time) error
	GetPendingDeletionIDs(ctx context.Context) ([]uuid.UUID, error)
	RemovePendingDeletions(ctx context.Context, ids ...uuid.UUID) error
}

// TxFunc is the body of a transaction. The repositories it receives are bound
// to the transaction.
type TxFunc func(ctx context.Context, repos *Repositories) error

// ServerStorage is the server record store.
type ServerStorage interface {
	// WithinTx runs fn in one transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithinTx(ctx context.Context, fn TxFunc) error
	// Snapshot reads all four collections in one transaction.
	Snapshot(ctx context.Context) (models.Snapshot, error)
	// IsRetryable reports whether err is a transient storage failure.
	IsRetryable(err error) bool
}

// LocalStorage is the client record store.
type LocalStorage interface {
	WithinTx(ctx context.Context, fn TxFunc) error
	// Repositories returns repositories bound to the connection pool, for
	// reads and single statement writes.
	Repositories() *Repositories
}
