// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/stoa-vault/models"
)

type settingsRepository struct {
	store Store
}

// NewSettingsRepository constructs a [SettingsRepository] on top of s.
func NewSettingsRepository(s Store) SettingsRepository {
	return &settingsRepository{store: s}
}

// Load returns the stored settings laid over [models.DefaultSettings], so
// fields missing from an older record keep their defaults.
func (r *settingsRepository) Load(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	raw, err := r.store.Get(ctx, KeySettings)
	if errors.Is(err, ErrNotFound) {
		return settings, nil
	}
	if err != nil {
		return models.Settings{}, err
	}

	if err = json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, KeySettings, err)
	}

	return settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings models.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	return r.store.Set(ctx, KeySettings, string(payload))
}
