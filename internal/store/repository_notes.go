// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/models"
)

// noteRepository stores the note collection as one JSON array under
// [KeyNotes]. Order is preserved.
type noteRepository struct {
	store Store
}

// NewNoteRepository constructs a [NoteRepository] on top of s.
func NewNoteRepository(s Store) NoteRepository {
	return &noteRepository{store: s}
}

// Load returns the stored collection, or an empty one when the vault has no
// notes yet.
func (r *noteRepository) Load(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	raw, err := r.store.Get(ctx, KeyNotes)
	if errors.Is(err, ErrNotFound) {
		return []models.Note{}, nil
	}
	if err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal([]byte(raw), &notes); err != nil {
		log.Err(err).Str("func", "noteRepository.Load").Msg("stored notes are not a JSON array of notes")
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, KeyNotes, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// Save overwrites the whole collection.
func (r *noteRepository) Save(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}

	payload, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	return r.store.Set(ctx, KeyNotes, string(payload))
}
