// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/stoa-vault/internal/crypto"
	"github.com/MKhiriev/stoa-vault/internal/store"
)

const (
	correctPassphrase = "correct-horse"
	wrongPassphrase   = "wrong-passphrase"
	mementoText       = "Memento mori, memento vivere"
)

// countingCipher counts calls to the real cipher. When gate is set, Decrypt
// signals on started and waits for gate to be closed.
type countingCipher struct {
	inner    crypto.Cipher
	encrypts atomic.Int64
	decrypts atomic.Int64

	started chan struct{}
	gate    chan struct{}
}

func newCountingCipher() *countingCipher {
	return &countingCipher{inner: crypto.NewCipher()}
}

func newGatedCipher() *countingCipher {
	p := newCountingCipher()
	p.started = make(chan struct{}, 1)
	p.gate = make(chan struct{})
	return p
}

func (p *countingCipher) Encrypt(key, plaintext []byte) (string, error) {
	p.encrypts.Add(1)
	return p.inner.Encrypt(key, plaintext)
}

func (p *countingCipher) Decrypt(key []byte, envelope string) ([]byte, error) {
	p.decrypts.Add(1)
	if p.gate != nil {
		select {
		case p.started <- struct{}{}:
		default:
		}
		<-p.gate
	}
	return p.inner.Decrypt(key, envelope)
}

func (p *countingCipher) calls() int64 {
	return p.encrypts.Load() + p.decrypts.Load()
}

func newTestSession(t *testing.T, s store.Store, opts ...Option) *Session {
	t.Helper()
	return NewSession(store.NewSaltRepository(s), opts...)
}

func unlock(t *testing.T, sess *Session, passphrase string) {
	t.Helper()
	require.NoError(t, sess.Initialize(context.Background(), []byte(passphrase)))
}
