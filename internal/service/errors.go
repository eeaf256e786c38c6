package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrDanglingReference is returned under the reject policy when a new
	// list item references a category, store or user list that does not exist.
	ErrDanglingReference = errors.New("list item references a missing record")
	// ErrNoFallbackReference is returned when a dangling reference cannot be
	// repaired because the referenced table is empty.
	ErrNoFallbackReference = errors.New("no record available to repair a dangling reference")

	// ErrServerReported is returned when the server answers with a decodable
	// response whose error message is set.
	ErrServerReported = errors.New("server reported a synchronization error")
	// ErrLocalApply is returned when the server state could not be written to
	// the local store. The local transaction is rolled back.
	ErrLocalApply = errors.New("failed to apply server changes locally")
	// ErrSyncPanicked is returned when a sync attempt panicked.
	ErrSyncPanicked = errors.New("synchronization panicked")

	ErrListItemNotFound = errors.New("list item not found")
)
