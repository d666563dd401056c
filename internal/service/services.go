// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/stoa-vault/internal/config"
	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/internal/utils"
	"github.com/MKhiriev/stoa-vault/internal/validators"
	"github.com/MKhiriev/stoa-vault/internal/vault"
)

// Services groups everything a host needs to drive one vault.
type Services struct {
	Vault    VaultService
	Notes    NotesService
	Settings SettingsService
	Export   ExportService
}

// NewServices wires one vault session, its decrypted cache and the services
// on top of storages.
func NewServices(cfg *config.StructuredConfig, storages *store.Storages, log *logger.Logger) *Services {
	session := vault.NewSession(storages.Salt,
		vault.WithKDFParams(cfg.Vault.KDFParams()),
		vault.WithLogger(log.GetChildLogger()),
	)
	cache := vault.NewDecryptedCache(session)
	validator := validators.NewVaultValidator()

	return &Services{
		Vault:    NewVaultService(session),
		Notes:    NewNotesService(storages.Notes, session, cache, validator, utils.NewUUIDGenerator()),
		Settings: NewSettingsService(storages.Settings, validator),
		Export:   NewExportService(storages.Store, cfg.Vault.Name),
	}
}
