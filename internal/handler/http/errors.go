// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrReconcilePanicked is reported when the sync service panics while
	// handling POST /api/sync.
	ErrReconcilePanicked = errors.New("reconciliation panicked")


	// ErrMissingHash is returned when integrity checking is enabled and the
	// request carries no HashSHA256 header.
	ErrMissingHash = errors.New("missing `HashSHA256` header")

	// ErrHashMismatch is returned when the HashSHA256 header does not match
	// the HMAC of the request body.
	ErrHashMismatch = errors.New("`HashSHA256` header does not match the body")
)
