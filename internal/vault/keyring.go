// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/stoa-vault/internal/crypto"
	"github.com/MKhiriev/stoa-vault/models"
)

// Keyring is the capability to encrypt and decrypt with the session key. It
// is handed out only while the session is Unlocked and stops working the
// moment the session locks: the key is wiped and every call fails with
// ErrNotInitialized.
type Keyring struct {
	mu     sync.RWMutex
	key    []byte
	cipher crypto.Cipher
	epoch  uint64
}

func newKeyring(key []byte, cipher crypto.Cipher, epoch uint64) *Keyring {
	return &Keyring{key: key, cipher: cipher, epoch: epoch}
}

// Epoch identifies the unlock this keyring belongs to.
func (k *Keyring) Epoch() uint64 {
	return k.epoch
}

// Encrypt seals plaintext into a fresh envelope.
func (k *Keyring) Encrypt(ctx context.Context, plaintext string) (models.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.key == nil {
		return "", ErrNotInitialized
	}

	envelope, err := k.cipher.Encrypt(k.key, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("vault: encrypt: %w", err)
	}
	return models.Envelope(envelope), nil
}

// Decrypt opens envelope. Authentication failures and malformed envelopes
// are reported as ErrDecryption, with the cipher error kept in the chain.
func (k *Keyring) Decrypt(ctx context.Context, envelope models.Envelope) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.key == nil {
		return "", ErrNotInitialized
	}

	plaintext, err := k.cipher.Decrypt(k.key, string(envelope))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	text := string(plaintext)
	crypto.SecureWipe(plaintext)
	return text, nil
}

// revoke wipes the key. It waits for in-flight operations to finish.
func (k *Keyring) revoke() {
	k.mu.Lock()
	defer k.mu.Unlock()

	crypto.SecureWipe(k.key)
	k.key = nil
}
