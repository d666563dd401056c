// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/stoa-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService locks and unlocks the vault.
type VaultService interface {
	// Unlock derives the session key from passphrase. The vault salt is
	// created on the very first unlock. A wrong passphrase is only detected
	// when a note is opened.
	Unlock(ctx context.Context, passphrase []byte) error

	// Lock wipes the key and clears every decrypted note from memory.
	Lock()

	IsLocked() bool
}

// NotesService manages the note collection. Titles, tags and types are
// plaintext and available while Locked; content needs an Unlocked vault.
type NotesService interface {
	// Create adds an empty note of the given type at the top of the
	// collection. An empty type means a thought.
	Create(ctx context.Context, noteType models.NoteType) (models.Note, error)

	// List returns the notes matching filter, pinned notes first, otherwise
	// in collection order.
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)

	// Get returns the note with id without decrypting it.
	Get(ctx context.Context, id string) (models.Note, error)

	// Open returns the decrypted content of the note. ok is false while the
	// vault is Locked.
	Open(ctx context.Context, id string) (content string, ok bool, err error)

	// Save re-encrypts content and updates the title.
	Save(ctx context.Context, id, title, content string) (models.Note, error)

	Delete(ctx context.Context, id string) error
	SetPinned(ctx context.Context, id string, pinned bool) (models.Note, error)
	SetTags(ctx context.Context, id string, tags []string) (models.Note, error)
}

// SettingsService reads and writes user preferences.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error

	// ToggleTheme switches dark to light and anything else to dark.
	ToggleTheme(ctx context.Context) (models.Settings, error)
}

// ExportService produces portable snapshots of the whole vault.
type ExportService interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)

	// WriteFile writes the snapshot into dir as
	// <vault-name>-export-<YYYY-MM-DD>.json and returns the file path.
	WriteFile(ctx context.Context, dir string, now time.Time) (string, error)
}

// IDGenerator produces unique note identifiers.
type IDGenerator interface {
	Generate() string
}
