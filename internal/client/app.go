// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/stoa-vault/internal/config"
	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/internal/service"
	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/internal/tui"
	"github.com/MKhiriev/stoa-vault/models"
)

// App owns the storage and services of one vault.
type App struct {
	Services *service.Services

	cfg       *config.StructuredConfig
	storages  *store.Storages
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp opens the storage described by cfg and wires the services.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	return &App{
		Services:  service.NewServices(cfg, storages, log),
		cfg:       cfg,
		storages:  storages,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run starts the interactive UI. Quitting the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("driver", a.cfg.Storage.Driver).
		Str("vault", a.cfg.Vault.Name).
		Msg("starting interactive session")

	ui := tui.New(a.Services, a.cfg.Storage.ExportDir, a.buildInfo, a.logger)
	if err := ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Close locks the vault and closes the storage.
func (a *App) Close() error {
	a.Services.Vault.Lock()
	return a.storages.Close()
}
