// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/models"
)

type exportService struct {
	store     store.Store
	vaultName string
}

// NewExportService constructs an [ExportService] for the vault called
// vaultName.
func NewExportService(s store.Store, vaultName string) ExportService {
	return &exportService{store: s, vaultName: vaultName}
}

// Snapshot copies the stored records verbatim. Missing records become JSON
// null; a salt stored in the old bare base64 form becomes a JSON string.
func (s *exportService) Snapshot(ctx context.Context) (models.Snapshot, error) {
	records, err := s.store.Export(ctx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export records: %w", err)
	}

	salt, err := rawRecord(records, store.KeySalt)
	if err != nil {
		return models.Snapshot{}, err
	}
	notes, err := rawRecord(records, store.KeyNotes)
	if err != nil {
		return models.Snapshot{}, err
	}
	settings, err := rawRecord(records, store.KeySettings)
	if err != nil {
		return models.Snapshot{}, err
	}

	return models.Snapshot{Notes: notes, Settings: settings, Salt: salt}, nil
}

func (s *exportService) WriteFile(ctx context.Context, dir string, now time.Time) (string, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	if err = os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, ExportFileName(s.vaultName, now))
	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "exportService.WriteFile").Str("path", path).Msg("vault exported")
	return path, nil
}

// ExportFileName returns <vaultName>-export-<YYYY-MM-DD>.json for the local
// date of now.
func ExportFileName(vaultName string, now time.Time) string {
	return fmt.Sprintf("%s-export-%s.json", vaultName, now.Format(time.DateOnly))
}

func rawRecord(records map[string]string, key string) (json.RawMessage, error) {
	value, ok := records[key]
	if !ok {
		return json.RawMessage("null"), nil
	}
	if json.Valid([]byte(value)) {
		return json.RawMessage(value), nil
	}
	if key != store.KeySalt {
		return nil, fmt.Errorf("%w: %s", store.ErrMalformedRecord, key)
	}

	quoted, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return quoted, nil
}
