// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/stoa-vault/internal/vault"
)

type vaultService struct {
	session *vault.Session
}

// NewVaultService exposes session as a [VaultService].
func NewVaultService(session *vault.Session) VaultService {
	return &vaultService{session: session}
}

func (s *vaultService) Unlock(ctx context.Context, passphrase []byte) error {
	return s.session.Initialize(ctx, passphrase)
}

func (s *vaultService) Lock() {
	s.session.Logout()
}

func (s *vaultService) IsLocked() bool {
	return s.session.IsLocked()
}
