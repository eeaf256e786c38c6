// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the sync
// server handlers and middleware.
//
// The Msg* constants are written into the error_message field of sync
// responses when a request is rejected before it reaches the reconciliation
// engine.
package app

const (
	// MsgEmptyBody is returned when POST /api/sync carries no body.
	MsgEmptyBody = "request body is empty"

	// MsgMalformedBody is returned when the body is not a sync request
	// document.
	MsgMalformedBody = "request body is not a valid sync request"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header is
	// missing or does not match the body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgBodyTooLarge is returned when the request body exceeds the size
	// limit of the sync endpoint.
	MsgBodyTooLarge = "request body is too large"

	// MsgInternalServerError is returned when the body cannot be read.
	MsgInternalServerError = "internal server error"
)
