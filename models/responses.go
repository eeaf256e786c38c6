package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncResponse contains the outcome of a reconciliation: the full server
// snapshot of all four collections, the ids whose deletion was applied and
// the server timestamp the client stores as its new cursor.
//
// When reconciliation fails, ErrorMessage is set and every collection is
// empty. The response is still a valid document so the client can tell a
// server-side rejection apart from a transport failure.
type SyncResponse struct {
	// ServerUpdatesListItems is every list item stored on the server.
	ServerUpdatesListItems []ListItem `json:"server_updates_list_items"`

	// ServerUpdatesCategories is every category stored on the server.
	ServerUpdatesCategories []Category `json:"server_updates_categories"`

	// ServerUpdatesStores is every store stored on the server.
	ServerUpdatesStores []Store `json:"server_updates_stores"`

	// ServerUpdatesUserLists is every user list stored on the server.
	ServerUpdatesUserLists []UserList `json:"server_updates_user_lists"`

	// ConfirmedDeletions are the requested ids that existed and were deleted.
	ConfirmedDeletions []uuid.UUID `json:"confirmed_deletions"`

	// ServerSyncTimestamp is the server's UTC time at the end of the sync.
	ServerSyncTimestamp time.Time `json:"server_sync_timestamp"`

	// HasMoreData is reserved and always false.
	HasMoreData bool `json:"has_more_data"`

	// ErrorMessage is non-empty only when reconciliation failed.
	ErrorMessage string `json:"error_message,omitempty"`
}

// NewEmptySyncResponse returns a response whose collections are empty, non-nil
// slices.
func NewEmptySyncResponse() SyncResponse {
	return SyncResponse{
		ServerUpdatesListItems:  []ListItem{},
		ServerUpdatesCategories: []Category{},
		ServerUpdatesStores:     []Store{},
		ServerUpdatesUserLists:  []UserList{},
		ConfirmedDeletions:      []uuid.UUID{},
	}
}

// NewErrorSyncResponse returns an empty response carrying message.
func NewErrorSyncResponse(message string) SyncResponse {
	resp := NewEmptySyncResponse()
	resp.ErrorMessage = message
	return resp
}
