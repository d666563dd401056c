// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stoa-vault/models"
)

func validNote() models.Note {
	now := models.NewTimestamp(time.Now())
	return models.Note{
		ID:        "0190f7a4-6c1e-7000-8000-000000000001",
		Title:     "On the shortness of life",
		Content:   "v1:AAAA",
		Tags:      []string{"seneca"},
		Type:      models.Reflection,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNewVaultValidator(t *testing.T) {
	require.NotNil(t, NewVaultValidator())
}

func TestValidate_Note(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(n *models.Note)
		wantErr bool
	}{
		{name: "valid", mutate: func(*models.Note) {}},
		{name: "no tags", mutate: func(n *models.Note) { n.Tags = nil }},
		{name: "missing id", mutate: func(n *models.Note) { n.ID = "" }, wantErr: true},
		{name: "unknown type", mutate: func(n *models.Note) { n.Type = "poem" }, wantErr: true},
		{name: "empty tag", mutate: func(n *models.Note) { n.Tags = []string{""} }, wantErr: true},
		{name: "long title", mutate: func(n *models.Note) { n.Title = strings.Repeat("a", 300) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNote()
			tt.mutate(&n)

			err := v.Validate(ctx, n)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNote)
			} else {
				assert.NoError(t, err)
			}

			// pointer form behaves the same
			errPtr := v.Validate(ctx, &n)
			assert.Equal(t, err == nil, errPtr == nil)
		})
	}
}

func TestValidate_Settings(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()
	good := "1990-05-17"
	bad := "17.05.1990"

	assert.NoError(t, v.Validate(ctx, models.DefaultSettings()))
	assert.NoError(t, v.Validate(ctx, models.Settings{Theme: models.ThemeDark, BirthDate: &good}))
	assert.ErrorIs(t, v.Validate(ctx, models.Settings{Theme: "neon"}), ErrInvalidSettings)
	assert.ErrorIs(t, v.Validate(ctx, models.Settings{Theme: models.ThemeLight, BirthDate: &bad}), ErrInvalidSettings)
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewVaultValidator()
	n := validNote()
	n.Type = "poem"

	// only tags are checked, the bad type is ignored
	assert.NoError(t, v.Validate(context.Background(), n, FieldTags))
	assert.ErrorIs(t, v.Validate(context.Background(), n, FieldType), ErrInvalidNote)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewVaultValidator().Validate(context.Background(), validNote(), "Color")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewVaultValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}

func TestValidate_NilPointer(t *testing.T) {
	var n *models.Note
	assert.ErrorIs(t, NewVaultValidator().Validate(context.Background(), n), ErrInvalidNote)
}
