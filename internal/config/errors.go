// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid vault settings (for example,
	// an unknown KDF or too few iterations).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an unknown driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
