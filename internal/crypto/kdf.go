// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Key derivation function identifiers as persisted in the salt record.
const (
	KDFPBKDF2   = "pbkdf2-sha256"
	KDFArgon2id = "argon2id"
)

const (
	// KeyLength is the length of derived keys in bytes (256 bits).
	KeyLength = 32

	// SaltLength is the length of a vault salt in bytes (128 bits).
	SaltLength = 16

	// DefaultIterations is the PBKDF2 iteration count for new vaults.
	DefaultIterations = 100_000

	// MinIterations is the lowest PBKDF2 iteration count accepted.
	MinIterations = 100_000

	// Argon2id defaults follow the OWASP recommendation: 1 pass over 64 MiB
	// with 4 lanes.
	DefaultArgon2Time    uint32 = 1
	DefaultArgon2Memory  uint32 = 64 * 1024
	DefaultArgon2Threads uint8  = 4

	// MinArgon2Memory is the lowest Argon2id memory cost accepted, in KiB.
	MinArgon2Memory uint32 = 19 * 1024
)

// KDFParams describes a key derivation function and its cost parameters.
type KDFParams struct {
	// Algorithm is KDFPBKDF2 or KDFArgon2id.
	Algorithm string

	// Iterations is the PBKDF2 iteration count.
	Iterations int

	// Time, Memory (KiB) and Threads are the Argon2id costs.
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultPBKDF2Params returns PBKDF2-HMAC-SHA-256 with DefaultIterations.
func DefaultPBKDF2Params() KDFParams {
	return KDFParams{Algorithm: KDFPBKDF2, Iterations: DefaultIterations}
}

// DefaultArgon2idParams returns the Argon2id parameters for new vaults.
func DefaultArgon2idParams() KDFParams {
	return KDFParams{
		Algorithm: KDFArgon2id,
		Time:      DefaultArgon2Time,
		Memory:    DefaultArgon2Memory,
		Threads:   DefaultArgon2Threads,
	}
}

// Validate checks that p names a known KDF and meets the minimum cost.
func (p KDFParams) Validate() error {
	switch p.Algorithm {
	case KDFPBKDF2:
		if p.Iterations < MinIterations {
			return fmt.Errorf("%w: pbkdf2 iterations %d < %d", ErrWeakParams, p.Iterations, MinIterations)
		}
	case KDFArgon2id:
		if p.Time < 1 || p.Threads < 1 || p.Memory < MinArgon2Memory {
			return fmt.Errorf("%w: argon2id t=%d m=%d p=%d", ErrWeakParams, p.Time, p.Memory, p.Threads)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKDF, p.Algorithm)
	}
	return nil
}

// NewDeriver returns the [KeyDeriver] for p. It refuses unknown algorithms
// and parameters below the minimum cost.
func NewDeriver(p KDFParams) (KeyDeriver, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch p.Algorithm {
	case KDFArgon2id:
		return &argon2Deriver{params: p}, nil
	default:
		return &pbkdf2Deriver{params: p}, nil
	}
}

// GenerateSalt reads SaltLength bytes from r. A nil r means crypto/rand.
func GenerateSalt(r io.Reader) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("crypto: generate salt: %w", err)
	}
	return salt, nil
}

type pbkdf2Deriver struct {
	params KDFParams
}

func (d *pbkdf2Deriver) Derive(passphrase, salt []byte) ([]byte, error) {
	if err := checkDeriveInput(passphrase, salt); err != nil {
		return nil, err
	}
	return pbkdf2.Key(passphrase, salt, d.params.Iterations, KeyLength, sha256.New), nil
}

func (d *pbkdf2Deriver) Params() KDFParams {
	return d.params
}

type argon2Deriver struct {
	params KDFParams
}

func (d *argon2Deriver) Derive(passphrase, salt []byte) ([]byte, error) {
	if err := checkDeriveInput(passphrase, salt); err != nil {
		return nil, err
	}
	return argon2.IDKey(
		passphrase,
		salt,
		d.params.Time,
		d.params.Memory,
		d.params.Threads,
		KeyLength,
	), nil
}

func (d *argon2Deriver) Params() KDFParams {
	return d.params
}

func checkDeriveInput(passphrase, salt []byte) error {
	if len(passphrase) == 0 {
		return ErrEmptyPassphrase
	}
	if len(salt) < SaltLength {
		return ErrInvalidSaltLength
	}
	return nil
}
