// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the background sync process started by cmd/client.
type Client interface {
	// Run syncs once, keeps the periodic sync worker running and returns
	// after SIGINT or SIGTERM.
	Run() error
}
