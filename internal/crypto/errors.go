// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the crypto primitives. Callers should match
// them with [errors.Is].
var (
	// ErrInvalidKeyLength is returned when a key is not KeyLength bytes.
	ErrInvalidKeyLength = errors.New("crypto: invalid key length, must be 32 bytes")

	// ErrInvalidSaltLength is returned when a salt is shorter than
	// SaltLength bytes.
	ErrInvalidSaltLength = errors.New("crypto: invalid salt length")

	// ErrWeakParams is returned when KDF parameters are below the minimum
	// accepted cost.
	ErrWeakParams = errors.New("crypto: key derivation parameters are too weak")

	// ErrUnknownKDF is returned for a KDF name this build does not support.
	ErrUnknownKDF = errors.New("crypto: unknown key derivation function")

	// ErrEmptyPassphrase is returned when an empty passphrase is given to a
	// deriver.
	ErrEmptyPassphrase = errors.New("crypto: passphrase cannot be empty")

	// ErrMalformedEnvelope is returned when an envelope cannot be decoded
	// or is too short to hold a nonce and a tag.
	ErrMalformedEnvelope = errors.New("crypto: malformed envelope")

	// ErrUnsupportedEnvelope is returned for an envelope carrying a format
	// version this build cannot read.
	ErrUnsupportedEnvelope = errors.New("crypto: unsupported envelope version")

	// ErrDecryptionFailed is returned when authentication tag verification
	// fails: the key is wrong or the data was corrupted or tampered with.
	ErrDecryptionFailed = errors.New("crypto: decryption failed, incorrect passphrase or corrupted data")
)
