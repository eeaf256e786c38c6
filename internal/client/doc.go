// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the shopping list client runtime.
//
// It wires client services and background synchronization into a single
// process lifecycle: one sync at start-up, then periodic syncs until the
// process is signalled to stop.
package client
