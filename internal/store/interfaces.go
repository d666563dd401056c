// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/stoa-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Well-known record keys of the vault namespace.
const (
	KeyNotes    = "notes"
	KeySettings = "settings"
	KeySalt     = "salt"
)

// Store is the low-level key-value namespace every vault lives in. Values are
// whole records; writes overwrite the previous value (last write wins) and
// there is no atomicity across keys.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Create stores value under key only if the key is absent. It returns
	// ErrAlreadyExists otherwise.
	Create(ctx context.Context, key, value string) error
	// Export returns every record exactly as stored.
	Export(ctx context.Context) (map[string]string, error)
	Close() error
}

// NoteRepository persists the ordered note collection as a single record.
type NoteRepository interface {
	Load(ctx context.Context) ([]models.Note, error)
	Save(ctx context.Context, notes []models.Note) error
}

// SettingsRepository persists user preferences. Load returns defaults when
// nothing has been saved yet.
type SettingsRepository interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

// SaltRepository persists the vault salt record. The record is written once
// and never modified afterwards.
type SaltRepository interface {
	// Load returns ErrNotFound when the vault has no salt yet.
	Load(ctx context.Context) (models.SaltRecord, error)
	// Create returns ErrAlreadyExists when a salt is already persisted.
	Create(ctx context.Context, record models.SaltRecord) error
}
