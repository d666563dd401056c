// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stoa-vault/internal/config"
	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/internal/vault"
)

func TestVaultService_LockUnlock(t *testing.T) {
	ctx := context.Background()
	storages := store.NewStoragesFromStore(store.NewMemoryStore())
	svc := NewVaultService(vault.NewSession(storages.Salt))

	assert.True(t, svc.IsLocked())
	require.NoError(t, svc.Unlock(ctx, []byte(testPassphrase)))
	assert.False(t, svc.IsLocked())
	assert.ErrorIs(t, svc.Unlock(ctx, []byte(testPassphrase)), vault.ErrAlreadyUnlocked)

	svc.Lock()
	assert.True(t, svc.IsLocked())
	svc.Lock()
	assert.True(t, svc.IsLocked())
}

func TestNewServices(t *testing.T) {
	ctx := context.Background()
	cfg := config.Defaults()
	cfg.Storage.Driver = "memory"
	storages := store.NewStoragesFromStore(store.NewMemoryStore())

	svcs := NewServices(&cfg, storages, logger.Nop())
	require.NoError(t, svcs.Vault.Unlock(ctx, []byte(testPassphrase)))

	note, err := svcs.Notes.Create(ctx, "")
	require.NoError(t, err)
	_, err = svcs.Notes.Save(ctx, note.ID, "Day one", "first entry")
	require.NoError(t, err)

	svcs.Vault.Lock()
	_, ok, err := svcs.Notes.Open(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svcs.Vault.Unlock(ctx, []byte(testPassphrase)))
	content, ok, err := svcs.Notes.Open(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "first entry", content)
}
