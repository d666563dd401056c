// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteType_Valid(t *testing.T) {
	for _, nt := range NoteTypes {
		assert.True(t, nt.Valid(), nt)
	}
	assert.False(t, NoteType("").Valid())
	assert.False(t, NoteType("poem").Valid())
}

func TestNoteFilter_Match(t *testing.T) {
	note := Note{Title: "On the Shortness of Life", Type: Reflection}

	assert.True(t, NoteFilter{}.Match(note))
	assert.True(t, NoteFilter{Search: "shortness"}.Match(note))
	assert.True(t, NoteFilter{Search: "LIFE", Type: Reflection}.Match(note))
	assert.False(t, NoteFilter{Type: Journal}.Match(note))
	assert.False(t, NoteFilter{Search: "anger"}.Match(note))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"stoic", "virtue"}, NormalizeTags([]string{" stoic", "virtue", "", "stoic ", "  "}))
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestTimestamp_JSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 3, 14, 9, 30, 15, 123456789, time.UTC))

	raw, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1773480615123", string(raw))

	var back Timestamp
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, ts.Equal(back.Time))

	require.NoError(t, json.Unmarshal([]byte("1773480615123.0"), &back))
	assert.True(t, ts.Equal(back.Time))

	require.NoError(t, json.Unmarshal([]byte("0"), &back))
	assert.True(t, back.IsZero())

	raw, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(raw))
}
