// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks sync payloads before they reach the
// reconciliation engine.
//
// Rules live in go-playground/validator struct tags on the models package
// types. A [Validator] is handed to the sync service, which rejects a batch
// with service.ErrInvalidDataProvided when any item fails.
package validators

import "context"

// Validator validates v. When fields are given only those struct fields
// are checked.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
