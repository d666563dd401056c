// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/stoa-vault/internal/crypto"
)

var storageDrivers = []string{"sqlite", "file", "memory"}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every failing group
// contributes its own error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch {
	case cfg.Vault.Name == "" || strings.ContainsAny(cfg.Vault.Name, `/\`):
		errs = append(errs, fmt.Errorf("%w: vault name %q", ErrInvalidVaultConfigs, cfg.Vault.Name))
	case cfg.Vault.KDF != KDFPBKDF2 && cfg.Vault.KDF != KDFArgon2id:
		errs = append(errs, fmt.Errorf("%w: unknown kdf %q", ErrInvalidVaultConfigs, cfg.Vault.KDF))
	case cfg.Vault.KDF == KDFPBKDF2 && cfg.Vault.Iterations < crypto.MinIterations:
		errs = append(errs, fmt.Errorf("%w: iterations %d below %d", ErrInvalidVaultConfigs, cfg.Vault.Iterations, crypto.MinIterations))
	}

	switch {
	case !slices.Contains(storageDrivers, cfg.Storage.Driver):
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver))
	case cfg.Storage.Driver != "memory" && cfg.Storage.DSN == "":
		errs = append(errs, fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs))
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
	}

	return errors.Join(errs...)
}
