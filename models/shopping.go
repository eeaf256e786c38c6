// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/google/uuid"
)

// PurchaseType tells where a list item is meant to be bought.
// It travels as a number on the wire.
type PurchaseType int

const (
	// PurchaseTypeOnline marks an item bought from an online store.
	PurchaseTypeOnline PurchaseType = 0

	// PurchaseTypeOffline marks an item bought in a physical store.
	PurchaseTypeOffline PurchaseType = 1
)

// String returns the lowercase name of the purchase type.
func (p PurchaseType) String() string {
	switch p {
	case PurchaseTypeOnline:
		return "online"
	case PurchaseTypeOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the known purchase types.
func (p PurchaseType) Valid() bool {
	return p == PurchaseTypeOnline || p == PurchaseTypeOffline
}

// Category groups list items by kind of product (e.g. "Groceries").
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Store is a place where list items are purchased.
type Store struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UserList is a named shopping list owning list items.
type UserList struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Reference is the set of parent records a [ListItem] points to.
type Reference interface {
	Category | Store | UserList
}

// ListItem is a single entry of a shopping list and the unit of
// synchronization.
//
// CategoryID, StoreID and UserListID reference parent records that must
// exist on the same side; the server repairs references that do not. ID is minted by whichever side creates the item
// and never changes afterwards.
type ListItem struct {
	// ID is the stable identifier and the only join key between client and
	// server copies of the item.
	ID uuid.UUID `json:"id" validate:"required"`

	// Name is the human-readable item name (e.g. "Milk"). Sync accepts any
	// string; only local entry enforces a non-empty name.
	Name string `json:"name"`

	// CategoryID references a [Category].
	CategoryID uuid.UUID `json:"category_id"`

	// StoreID references a [Store].
	StoreID uuid.UUID `json:"store_id"`

	// PurchaseType is online or offline.
	PurchaseType PurchaseType `json:"purchase_type" validate:"purchase_type"`

	// IsRecurring marks items that are bought regularly.
	IsRecurring bool `json:"is_recurring"`

	// IsActive is false for items already bought.
	IsActive bool `json:"is_active"`

	// IsArchived hides the item from the active list.
	IsArchived bool `json:"is_archived"`

	// UserListID references the owning [UserList].
	UserListID uuid.UUID `json:"user_list_id"`
}
