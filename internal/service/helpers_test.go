// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/internal/validators"
	"github.com/MKhiriev/stoa-vault/internal/vault"
)

const testPassphrase = "correct-horse"

type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) Generate() string {
	return fmt.Sprintf("note-%d", g.n.Add(1))
}

type notesFixture struct {
	storages *store.Storages
	session  *vault.Session
	cache    *vault.DecryptedCache
	notes    *notesService
}

func newNotesFixture(t *testing.T) *notesFixture {
	t.Helper()

	storages := store.NewStoragesFromStore(store.NewMemoryStore())
	session := vault.NewSession(storages.Salt)
	cache := vault.NewDecryptedCache(session)

	svc := NewNotesService(storages.Notes, session, cache, validators.NewVaultValidator(), &seqIDs{}).(*notesService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

	return &notesFixture{storages: storages, session: session, cache: cache, notes: svc}
}

func (f *notesFixture) unlock(t *testing.T) {
	t.Helper()
	require.NoError(t, f.session.Initialize(context.Background(), []byte(testPassphrase)))
}
