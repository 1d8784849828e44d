// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come from
// the `envPrefix` of each section joined with the field's `env` tag, for
// example STORAGE_DB_DATABASE_URI.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}
