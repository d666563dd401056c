// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/internal/validators"
	"github.com/MKhiriev/stoa-vault/models"
)

type settingsService struct {
	settings  store.SettingsRepository
	validator validators.Validator

	mu sync.Mutex
}

// NewSettingsService constructs a [SettingsService].
func NewSettingsService(settings store.SettingsRepository, validator validators.Validator) SettingsService {
	return &settingsService{settings: settings, validator: validator}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.settings.Load(ctx)
}

func (s *settingsService) Save(ctx context.Context, settings models.Settings) error {
	if err := s.validator.Validate(ctx, settings); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Save(ctx, settings)
}

func (s *settingsService) ToggleTheme(ctx context.Context) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	if settings.Theme == models.ThemeDark {
		settings.Theme = models.ThemeLight
	} else {
		settings.Theme = models.ThemeDark
	}

	if err = s.settings.Save(ctx, settings); err != nil {
		return models.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
