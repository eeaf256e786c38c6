// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no listener can be
// built from the handlers and config it was given.
var errNoServersAreCreated = errors.New("no servers are created")
