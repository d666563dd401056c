// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault holds the unlocked state of a vault: the session key
// derived from the passphrase, the [Keyring] capability that gates every
// cipher call, and the [DecryptedCache] whose lifetime is bound to the
// unlock.
//
// A Session starts Locked. Initialize derives the key in the background and
// moves it to Unlocked; Logout wipes the key, moves it back to Locked and
// clears every registered cache before returning.
package vault

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/MKhiriev/stoa-vault/internal/crypto"
	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/internal/workers"
	"github.com/MKhiriev/stoa-vault/models"
)

// Session is the Locked/Unlocked state machine of one vault.
type Session struct {
	salts      store.SaltRepository
	params     crypto.KDFParams
	cipher     crypto.Cipher
	codec      crypto.Codec
	random     io.Reader
	newDeriver func(crypto.KDFParams) (crypto.KeyDeriver, error)
	logger     *logger.Logger

	// initMu serialises Initialize calls.
	initMu sync.Mutex

	mu      sync.RWMutex
	keyring *Keyring
	epoch   uint64
	onLock  []func()
}

// Option configures a [Session].
type Option func(*Session)

// WithKDFParams sets the key derivation parameters recorded for a vault
// that has no salt yet. Existing vaults keep their recorded parameters.
func WithKDFParams(p crypto.KDFParams) Option {
	return func(s *Session) { s.params = p }
}

// WithCipher replaces the AES-256-GCM cipher.
func WithCipher(c crypto.Cipher) Option {
	return func(s *Session) { s.cipher = c }
}

// WithRandom sets the source of new salts.
func WithRandom(r io.Reader) Option {
	return func(s *Session) { s.random = r }
}

// WithDeriverFactory replaces [crypto.NewDeriver].
func WithDeriverFactory(f func(crypto.KDFParams) (crypto.KeyDeriver, error)) Option {
	return func(s *Session) { s.newDeriver = f }
}

// WithLogger sets the session logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession returns a Locked session whose salt lives in salts.
func NewSession(salts store.SaltRepository, opts ...Option) *Session {
	s := &Session{
		salts:      salts,
		params:     crypto.DefaultPBKDF2Params(),
		cipher:     crypto.NewCipher(),
		codec:      crypto.Base64,
		newDeriver: crypto.NewDeriver,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize derives the session key from passphrase and unlocks the
// session. The salt is loaded, or generated and persisted first when the
// vault has none. Derivation runs in the background; when ctx is done first
// Initialize returns and the late key is wiped on arrival.
//
// On any failure the session stays Locked and the error wraps
// ErrInitialization. A wrong passphrase is not detected here: it produces a
// different key that fails on the first Decrypt.
func (s *Session) Initialize(ctx context.Context, passphrase []byte) error {
	log := s.logger

	s.initMu.Lock()
	defer s.initMu.Unlock()

	if !s.IsLocked() {
		return ErrAlreadyUnlocked
	}
	if len(passphrase) == 0 {
		return fmt.Errorf("%w: %w", ErrInitialization, crypto.ErrEmptyPassphrase)
	}

	record, salt, err := s.loadOrCreateSalt(ctx)
	if err != nil {
		log.Err(err).Str("func", "Session.Initialize").Msg("failed to prepare vault salt")
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	deriver, err := s.newDeriver(paramsFromRecord(record))
	if err != nil {
		log.Err(err).Str("func", "Session.Initialize").Str("kdf", record.KDF).Msg("unusable kdf parameters in salt record")
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	pass := bytes.Clone(passphrase)
	future := workers.Go(ctx, func(context.Context) ([]byte, error) {
		defer crypto.SecureWipe(pass)
		return deriver.Derive(pass, salt)
	})

	key, err := future.Await(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			future.Discard(crypto.SecureWipe)
			log.Debug().Str("func", "Session.Initialize").Msg("key derivation abandoned")
			return fmt.Errorf("%w: %w", ErrInitialization, ctxErr)
		}
		log.Err(err).Str("func", "Session.Initialize").Msg("key derivation failed")
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	s.mu.Lock()
	s.keyring = newKeyring(key, s.cipher, s.epoch)
	s.mu.Unlock()

	log.Info().Str("func", "Session.Initialize").Str("kdf", record.KDF).Msg("vault unlocked")
	return nil
}

// Logout locks the session, runs the OnLock hooks and then wipes the key,
// all before returning. The hooks run before the wipe, which waits for
// in-flight operations. Operations still holding the old [Keyring] fail with
// ErrNotInitialized from now on. Logout on a Locked session does nothing.
func (s *Session) Logout() {
	s.mu.Lock()
	kr := s.keyring
	if kr == nil {
		s.mu.Unlock()
		return
	}
	s.keyring = nil
	s.epoch++
	hooks := slices.Clone(s.onLock)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
	kr.revoke()

	s.logger.Info().Str("func", "Session.Logout").Msg("vault locked")
}

// IsLocked reports whether the session holds no key.
func (s *Session) IsLocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyring == nil
}

// Epoch counts completed locks. It changes exactly when the session goes
// from Unlocked to Locked.
func (s *Session) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Keyring returns the encryption capability of the current unlock, or
// ErrNotInitialized while Locked.
func (s *Session) Keyring() (*Keyring, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.keyring == nil {
		return nil, ErrNotInitialized
	}
	return s.keyring, nil
}

// OnLock registers fn to run synchronously inside every Logout.
func (s *Session) OnLock(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLock = append(s.onLock, fn)
}

// Encrypt seals plaintext with the session key.
func (s *Session) Encrypt(ctx context.Context, plaintext string) (models.Envelope, error) {
	kr, err := s.Keyring()
	if err != nil {
		return "", err
	}
	return kr.Encrypt(ctx, plaintext)
}

// Decrypt opens envelope with the session key.
func (s *Session) Decrypt(ctx context.Context, envelope models.Envelope) (string, error) {
	kr, err := s.Keyring()
	if err != nil {
		return "", err
	}
	return kr.Decrypt(ctx, envelope)
}

// unlockedEpoch returns the current epoch and whether the session is
// Unlocked, read atomically.
func (s *Session) unlockedEpoch() (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch, s.keyring != nil
}

// loadOrCreateSalt returns the persisted salt record and the decoded salt.
// A missing salt is generated and persisted before anything is derived from
// it; if another writer persisted one first, that one is used.
func (s *Session) loadOrCreateSalt(ctx context.Context) (models.SaltRecord, []byte, error) {
	record, err := s.salts.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		record, err = s.createSalt(ctx)
		if errors.Is(err, store.ErrAlreadyExists) {
			record, err = s.salts.Load(ctx)
		}
	}
	if err != nil {
		return models.SaltRecord{}, nil, err
	}

	salt, err := s.codec.Decode(record.Salt)
	if err != nil {
		return models.SaltRecord{}, nil, fmt.Errorf("decode salt: %w", err)
	}
	if len(salt) < crypto.SaltLength {
		return models.SaltRecord{}, nil, fmt.Errorf("%w: got %d bytes", crypto.ErrInvalidSaltLength, len(salt))
	}

	return record, salt, nil
}

func (s *Session) createSalt(ctx context.Context) (models.SaltRecord, error) {
	if err := s.params.Validate(); err != nil {
		return models.SaltRecord{}, err
	}

	salt, err := crypto.GenerateSalt(s.random)
	if err != nil {
		return models.SaltRecord{}, err
	}

	record := models.SaltRecord{
		Version:    models.SaltRecordVersion,
		KDF:        s.params.Algorithm,
		Iterations: s.params.Iterations,
		Time:       s.params.Time,
		Memory:     s.params.Memory,
		Threads:    s.params.Threads,
		Salt:       s.codec.Encode(salt),
	}
	if err = s.salts.Create(ctx, record); err != nil {
		return models.SaltRecord{}, err
	}

	s.logger.Info().Str("func", "Session.createSalt").Str("kdf", record.KDF).Msg("new vault salt persisted")
	return record, nil
}

func paramsFromRecord(r models.SaltRecord) crypto.KDFParams {
	return crypto.KDFParams{
		Algorithm:  r.KDF,
		Iterations: r.Iterations,
		Time:       r.Time,
		Memory:     r.Memory,
		Threads:    r.Threads,
	}
}
