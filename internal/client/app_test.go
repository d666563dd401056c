// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stoa-vault/internal/config"
	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/models"
)

func TestNewApp_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()

	cfg := config.Defaults()
	cfg.Storage.Driver = store.DriverSQLite
	cfg.Storage.DSN = filepath.Join(t.TempDir(), "vault.db")

	app, err := NewApp(ctx, &cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Services.Vault.Unlock(ctx, []byte("correct-horse")))
	note, err := app.Services.Notes.Create(ctx, models.Journal)
	require.NoError(t, err)
	_, err = app.Services.Notes.Save(ctx, note.ID, "Day one", "first entry")
	require.NoError(t, err)
	require.NoError(t, app.Close())
	assert.True(t, app.Services.Vault.IsLocked())

	reopened, err := NewApp(ctx, &cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	require.NoError(t, reopened.Services.Vault.Unlock(ctx, []byte("correct-horse")))
	content, ok, err := reopened.Services.Notes.Open(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "first entry", content)
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := config.Defaults()
	cfg.Storage.Driver = "postgres"

	_, err := NewApp(context.Background(), &cfg, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, store.ErrUnknownDriver)
}
