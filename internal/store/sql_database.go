// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/migrations"
)

// DB wraps the sqlite connection together with the logger used for
// connection-level events.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies every pending schema migration.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
