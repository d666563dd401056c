// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/stoa-vault/internal/crypto"
	"github.com/MKhiriev/stoa-vault/models"
)

type saltRepository struct {
	store Store
}

// NewSaltRepository constructs a [SaltRepository] on top of s.
func NewSaltRepository(s Store) SaltRepository {
	return &saltRepository{store: s}
}

// Load reads the salt record. Besides the JSON record it accepts the older
// format where the value is the bare base64 salt, which always meant
// PBKDF2-SHA256 at the default iteration count.
func (r *saltRepository) Load(ctx context.Context) (models.SaltRecord, error) {
	raw, err := r.store.Get(ctx, KeySalt)
	if err != nil {
		return models.SaltRecord{}, err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.SaltRecord{}, fmt.Errorf("%w: %s: empty value", ErrMalformedRecord, KeySalt)
	}

	if !strings.HasPrefix(raw, "{") {
		return models.SaltRecord{
			KDF:        crypto.KDFPBKDF2,
			Iterations: crypto.DefaultIterations,
			Salt:       raw,
		}, nil
	}

	var record models.SaltRecord
	if err = json.Unmarshal([]byte(raw), &record); err != nil {
		return models.SaltRecord{}, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, KeySalt, err)
	}
	if record.Salt == "" || record.KDF == "" {
		return models.SaltRecord{}, fmt.Errorf("%w: %s: missing kdf or salt", ErrMalformedRecord, KeySalt)
	}

	return record, nil
}

// Create persists record unless a salt already exists.
func (r *saltRepository) Create(ctx context.Context, record models.SaltRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode salt record: %w", err)
	}

	return r.store.Create(ctx, KeySalt, string(payload))
}
