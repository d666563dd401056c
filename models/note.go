// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// NoteType classifies a note in the vault. It is stored in plaintext and is
// used by the list tabs to filter the collection.
type NoteType string

const (
	// Journal is a dated, diary-style entry.
	Journal NoteType = "journal"

	// Reflection is a longer, considered piece of writing.
	Reflection NoteType = "reflection"

	// Thought is a short note. It is the default type for new notes.
	Thought NoteType = "thought"

	// Archive marks notes that are kept but no longer active.
	Archive NoteType = "archive"
)

// NoteTypes lists every supported [NoteType] in display order.
var NoteTypes = []NoteType{Journal, Reflection, Thought, Archive}

// Valid reports whether t is one of the supported note types.
func (t NoteType) Valid() bool {
	for _, nt := range NoteTypes {
		if t == nt {
			return true
		}
	}
	return false
}

// Envelope is the serialized form of one encrypted value: nonce, ciphertext
// and authentication tag, text-encoded. It is opaque outside the crypto layer.
type Envelope string

// Note is a single record of the vault collection.
//
// Only Content is confidential. Title, tags, type and timestamps are kept in
// plaintext so the collection can be listed and filtered while the vault is
// locked.
type Note struct {
	// ID is a client-generated UUID that never changes for the lifetime of
	// the note.
	ID string `json:"id" validate:"required"`

	// Title is the plaintext note heading.
	Title string `json:"title" validate:"max=256"`

	// Content is the encrypted body of the note.
	Content Envelope `json:"content" validate:"required"`

	// Tags is a set of free-form labels; duplicates are removed on write.
	Tags []string `json:"tags" validate:"max=32,dive,min=1,max=64"`

	// Type is the note category.
	Type NoteType `json:"type" validate:"required,oneof=journal reflection thought archive"`

	// CreatedAt is the creation time, stored as Unix milliseconds.
	CreatedAt Timestamp `json:"createdAt"`

	// UpdatedAt is the time of the last content or title change.
	UpdatedAt Timestamp `json:"updatedAt"`

	// IsPinned keeps the note at the top of the list.
	IsPinned bool `json:"isPinned"`
}

// NoteFilter selects notes for the list view. A zero value matches every
// note.
type NoteFilter struct {
	// Search is matched case-insensitively against the note title.
	Search string

	// Type restricts the result to a single note type. Empty means all.
	Type NoteType
}

// Match reports whether n satisfies the filter.
func (f NoteFilter) Match(n Note) bool {
	if f.Type != "" && n.Type != f.Type {
		return false
	}
	return strings.Contains(strings.ToLower(n.Title), strings.ToLower(f.Search))
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// keeping the first occurrence order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Timestamp is a [time.Time] that is encoded in JSON as Unix milliseconds,
// the representation used by the persisted note collection.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, truncated to millisecond precision so that a value
// survives a JSON round trip unchanged.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{time.UnixMilli(t.UnixMilli()).UTC()}
}

// MarshalJSON encodes the timestamp as an integer number of milliseconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(t.UnixMilli())
}

// UnmarshalJSON decodes an integer (or float, as written by some JavaScript
// runtimes) number of milliseconds.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	if ms == 0 {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}
