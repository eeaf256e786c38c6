// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following its env and
// envPrefix tags. Unset variables leave the zero value, so the flag and
// JSON layers can still provide them.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingEnv, err)
	}
	return nil
}
