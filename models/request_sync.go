// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncRequest is sent by the client to start a synchronization cycle.
//
// UpdatedItems always carries the complete local item collection, not only
// the records changed since the last sync. DeletedItemIDs lists items the
// client removed locally since its previous successful sync.
type SyncRequest struct {
	// UpdatedItems is the full set of list items in the client's local store.
	UpdatedItems []ListItem `json:"updated_items" validate:"dive"`

	// DeletedItemIDs are identifiers of items deleted on the client.
	DeletedItemIDs []uuid.UUID `json:"deleted_item_ids"`

	// LastSyncTimestamp is the client's cursor: the server timestamp of the
	// last successful sync, or the zero time if the client never synced.
	LastSyncTimestamp time.Time `json:"last_sync_timestamp"`
}

// NewSyncRequest returns a request with non-nil collections so that empty
// sets encode as JSON arrays.
func NewSyncRequest(items []ListItem, deleted []uuid.UUID, since time.Time) SyncRequest {
	if items == nil {
		items = []ListItem{}
	}
	if deleted == nil {
		deleted = []uuid.UUID{}
	}

	return SyncRequest{
		UpdatedItems:      items,
		DeletedItemIDs:    deleted,
		LastSyncTimestamp: since,
	}
}
