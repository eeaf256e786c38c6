// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side transport to the shopping list
// sync server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/JSON implementation ([NewHTTPServerAdapter]) of the
// POST /api/sync exchange.
//
// Failures are reported with the sentinel values defined in errors.go so
// callers can use [errors.Is]: every failure to obtain a decodable response
// matches [ErrTransport], and an undecodable body also matches
// [ErrDecodeResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shopping-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter sends a change-set to the sync server.
type ServerAdapter interface {
	// Sync posts req and returns the decoded response. A response whose
	// ErrorMessage is set is returned as is, without an error, when the
	// server sent it with a 2xx status.
	Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error)
}
