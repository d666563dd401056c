// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/internal/validators"
	"github.com/MKhiriev/stoa-vault/internal/vault"
	"github.com/MKhiriev/stoa-vault/models"
)

// DefaultNoteTitle is the title of every newly created note.
const DefaultNoteTitle = "Untitled Reflection"

// notesService keeps the whole collection in one record, so every change is
// a read-modify-write of that record under mu.
type notesService struct {
	notes     store.NoteRepository
	session   *vault.Session
	cache     *vault.DecryptedCache
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	mu sync.Mutex
}

// NewNotesService constructs a [NotesService].
func NewNotesService(
	notes store.NoteRepository,
	session *vault.Session,
	cache *vault.DecryptedCache,
	validator validators.Validator,
	ids IDGenerator,
) NotesService {
	return &notesService{
		notes:     notes,
		session:   session,
		cache:     cache,
		validator: validator,
		ids:       ids,
		now:       time.Now,
	}
}

func (s *notesService) Create(ctx context.Context, noteType models.NoteType) (models.Note, error) {
	log := logger.FromContext(ctx)

	if noteType == "" {
		noteType = models.Thought
	}
	if !noteType.Valid() {
		return models.Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteType, noteType)
	}

	content, err := s.session.Encrypt(ctx, "")
	if err != nil {
		return models.Note{}, err
	}

	now := models.NewTimestamp(s.now())
	note := models.Note{
		ID:        s.ids.Generate(),
		Title:     DefaultNoteTitle,
		Content:   content,
		Tags:      []string{},
		Type:      noteType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.validator.Validate(ctx, note); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.notes.Load(ctx)
	if err != nil {
		return models.Note{}, fmt.Errorf("load notes: %w", err)
	}
	if err = s.notes.Save(ctx, slices.Insert(notes, 0, note)); err != nil {
		log.Err(err).Str("func", "notesService.Create").Str("note_id", note.ID).Msg("failed to persist new note")
		return models.Note{}, fmt.Errorf("save notes: %w", err)
	}

	s.cache.Put(note.ID, "")
	log.Debug().Str("func", "notesService.Create").Str("note_id", note.ID).Str("type", string(note.Type)).Msg("note created")

	return note, nil
}

func (s *notesService) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := s.notes.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	matched := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if filter.Match(n) {
			matched = append(matched, n)
		}
	}

	slices.SortStableFunc(matched, func(a, b models.Note) int {
		switch {
		case a.IsPinned == b.IsPinned:
			return 0
		case a.IsPinned:
			return -1
		default:
			return 1
		}
	})

	return matched, nil
}

func (s *notesService) Get(ctx context.Context, id string) (models.Note, error) {
	notes, err := s.notes.Load(ctx)
	if err != nil {
		return models.Note{}, fmt.Errorf("load notes: %w", err)
	}

	i := indexOf(notes, id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return notes[i], nil
}

func (s *notesService) Open(ctx context.Context, id string) (string, bool, error) {
	note, err := s.Get(ctx, id)
	if err != nil {
		return "", false, err
	}

	content, ok, err := s.cache.Get(ctx, note.ID, note.Content)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "notesService.Open").
			Str("note_id", id).
			Msg("failed to decrypt note")
		return "", false, err
	}
	return content, ok, nil
}

func (s *notesService) Save(ctx context.Context, id, title, content string) (models.Note, error) {
	envelope, err := s.session.Encrypt(ctx, content)
	if err != nil {
		return models.Note{}, err
	}

	note, err := s.update(ctx, id, func(n *models.Note) {
		n.Title = title
		n.Content = envelope
		n.UpdatedAt = models.NewTimestamp(s.now())
	}, validators.FieldTitle)
	if err != nil {
		return models.Note{}, err
	}

	s.cache.Put(id, content)
	return note, nil
}

func (s *notesService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.notes.Load(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	i := indexOf(notes, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	if err = s.notes.Save(ctx, slices.Delete(notes, i, i+1)); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}

	s.cache.Remove(id)
	return nil
}

func (s *notesService) SetPinned(ctx context.Context, id string, pinned bool) (models.Note, error) {
	return s.update(ctx, id, func(n *models.Note) {
		n.IsPinned = pinned
	})
}

func (s *notesService) SetTags(ctx context.Context, id string, tags []string) (models.Note, error) {
	normalized := models.NormalizeTags(tags)
	return s.update(ctx, id, func(n *models.Note) {
		n.Tags = normalized
	}, validators.FieldTags)
}

// update applies change to the note with id, validates the listed fields
// and persists the collection.
func (s *notesService) update(ctx context.Context, id string, change func(*models.Note), fields ...string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.notes.Load(ctx)
	if err != nil {
		return models.Note{}, fmt.Errorf("load notes: %w", err)
	}

	i := indexOf(notes, id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}

	note := notes[i]
	change(&note)
	if len(fields) > 0 {
		if err = s.validator.Validate(ctx, note, fields...); err != nil {
			return models.Note{}, err
		}
	}

	notes[i] = note
	if err = s.notes.Save(ctx, notes); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "notesService.update").
			Str("note_id", id).
			Msg("failed to persist note change")
		return models.Note{}, fmt.Errorf("save notes: %w", err)
	}

	return note, nil
}

func indexOf(notes []models.Note, id string) int {
	return slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
}
