package models

import (
	"time"

	"github.com/google/uuid"
)

// LastSyncTimestampKey is the key of the client's cursor row.
const LastSyncTimestampKey = "LastSyncTimestamp"

// CursorLayout is the text format of a stored cursor value.
const CursorLayout = time.RFC3339Nano

// Cursor is a client-local key/value row. The only key in use is
// [LastSyncTimestampKey], whose value is the server timestamp of the last
// successful synchronization.
type Cursor struct {
	Key   string
	Value string
}

// Time parses the cursor value. An unparsable value yields the zero time,
// which means the client never synced.
func (c Cursor) Time() time.Time {
	t, err := time.Parse(CursorLayout, c.Value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NewCursor formats t as a [LastSyncTimestampKey] cursor.
func NewCursor(t time.Time) Cursor {
	return Cursor{
		Key:   LastSyncTimestampKey,
		Value: t.UTC().Format(CursorLayout),
	}
}

// Snapshot is the complete content of a record store.
type Snapshot struct {
	Categories []Category
	Stores     []Store
	UserLists  []UserList
	ListItems  []ListItem
}

// PendingDeletion is a list item id removed on the client and not yet
// confirmed by the server.
type PendingDeletion struct {
	ID        uuid.UUID
	DeletedAt time.Time
}
