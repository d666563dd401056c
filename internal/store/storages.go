// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stoa-vault/internal/config"
	"github.com/MKhiriev/stoa-vault/internal/logger"
)

// Storage drivers understood by [NewStorages].
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Storages groups the vault store and the repositories built on top of it
// into a single value that can be passed around the service layer.
type Storages struct {
	Store    Store
	Notes    NoteRepository
	Settings SettingsRepository
	Salt     SaltRepository
}

// NewStorages opens the store selected by cfg.Driver and wires the
// repositories to it. For the sqlite driver it performs the following steps:
//  1. Opens a connection to cfg.DSN, creating the database file if it does
//     not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//
// The file driver keeps a JSON document at cfg.DSN; the memory driver keeps
// nothing on disk.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		s   Store
		err error
	)

	switch cfg.Driver {
	case DriverSQLite, "":
		var db *DB
		db, err = NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		s = NewSQLiteStore(db)
	case DriverFile:
		s, err = NewFileStore(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
	case DriverMemory:
		s = NewMemoryStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	return NewStoragesFromStore(s), nil
}

// NewStoragesFromStore wires the repositories to an existing store.
func NewStoragesFromStore(s Store) *Storages {
	return &Storages{
		Store:    s,
		Notes:    NewNoteRepository(s),
		Settings: NewSettingsRepository(s),
		Salt:     NewSaltRepository(s),
	}
}

// Close releases the underlying store.
func (s *Storages) Close() error {
	return s.Store.Close()
}
