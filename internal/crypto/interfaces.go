// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the cryptographic primitives of the vault: password
// based key derivation and authenticated encryption of text payloads.
//
// The package keeps no state between calls. Which key is in use, and whether
// it may be used at all, is decided by the vault session that owns it.
//
// Scheme:
//
//	salt     = GenerateSalt()                          (once per vault)
//	key      = KeyDeriver.Derive(passphrase, salt)     (every unlock)
//	envelope = Cipher.Encrypt(key, plaintext)          (fresh nonce per call)
//	plain    = Cipher.Decrypt(key, envelope)           (fails on tag mismatch)
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver stretches a low-entropy passphrase into a 256-bit key.
//
// Derive is deterministic: the same passphrase and salt always produce the
// same key. It performs no check against known data, so a wrong passphrase
// silently yields a different, valid-looking key.
type KeyDeriver interface {
	// Derive returns KeyLength bytes of key material.
	Derive(passphrase, salt []byte) ([]byte, error)

	// Params returns the parameters the deriver was built with. They are
	// persisted next to the salt so later unlocks reproduce the same key.
	Params() KDFParams
}

// Cipher encrypts and decrypts text payloads into self-contained envelopes.
type Cipher interface {
	// Encrypt seals plaintext under key with a fresh random nonce and
	// returns the text-encoded envelope. Encrypting the same plaintext twice
	// never yields the same envelope.
	Encrypt(key, plaintext []byte) (string, error)

	// Decrypt opens an envelope produced by Encrypt. It returns
	// ErrDecryptionFailed when the authentication tag does not verify; no
	// partial plaintext is ever returned.
	Decrypt(key []byte, envelope string) ([]byte, error)
}

// Codec is a reversible byte to text encoding used for salts, nonces and
// envelopes.
type Codec interface {
	Encode(b []byte) string
	Decode(s string) ([]byte, error)
}
