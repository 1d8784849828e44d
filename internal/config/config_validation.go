// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-deed-keeper/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A malformed encryption key is a configuration error: the server refuses to
// start rather than failing on the first listing.
func (cfg *StructuredConfig) validate() error {
	if _, err := crypto.ParseKey(cfg.App.EncryptionKeyBase64); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if cfg.App.ReservationTTL <= 0 {
		return fmt.Errorf("%w: reservation ttl must be positive", ErrInvalidAppConfigs)
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.RegistryFile == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
