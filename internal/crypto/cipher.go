// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

const (
	// NonceLength is the AES-GCM nonce length in bytes (96 bits).
	NonceLength = 12

	// EnvelopeVersion is the format prefix written in front of every new
	// envelope: "v1:" + base64(nonce || ciphertext || tag).
	EnvelopeVersion = "v1"
)

const envelopeSeparator = ":"

// aesGCM is the AES-256-GCM implementation of [Cipher].
type aesGCM struct {
	random io.Reader
	codec  Codec
}

// CipherOption configures the cipher returned by [NewCipher].
type CipherOption func(*aesGCM)

// WithRandom replaces the nonce source. Intended for tests only.
func WithRandom(r io.Reader) CipherOption {
	return func(c *aesGCM) {
		c.random = r
	}
}

// NewCipher returns the AES-256-GCM [Cipher] used for note content.
func NewCipher(opts ...CipherOption) Cipher {
	c := &aesGCM{random: rand.Reader, codec: Base64}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt implements [Cipher]. The envelope is
// "v1:" + base64(nonce || ciphertext || tag).
func (c *aesGCM) Encrypt(key, plaintext []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	blob := make([]byte, NonceLength, NonceLength+len(plaintext)+gcm.Overhead())
	if _, err := io.ReadFull(c.random, blob); err != nil {
		return "", fmt.Errorf("crypto: generate nonce: %w", err)
	}

	// Seal appends ciphertext||tag after the nonce already in blob.
	blob = gcm.Seal(blob, blob[:NonceLength], plaintext, nil)

	return EnvelopeVersion + envelopeSeparator + c.codec.Encode(blob), nil
}

// Decrypt implements [Cipher]. Envelopes without a version prefix are read
// as bare base64(nonce || ciphertext || tag), the layout that predates the
// prefix.
func (c *aesGCM) Decrypt(key []byte, envelope string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	payload, err := stripVersion(envelope)
	if err != nil {
		return nil, err
	}

	blob, err := c.codec.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if len(blob) < NonceLength+gcm.Overhead() {
		return nil, ErrMalformedEnvelope
	}

	nonce, ciphertext := blob[:NonceLength], blob[NonceLength:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLength {
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("crypto: create gcm: %w", err)
	}

	return gcm, nil
}

// stripVersion removes a known version prefix. The base64 alphabet has no
// ':' so an unprefixed envelope is unambiguous.
func stripVersion(envelope string) (string, error) {
	version, payload, found := strings.Cut(envelope, envelopeSeparator)
	if !found {
		return envelope, nil
	}
	if version != EnvelopeVersion {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEnvelope, version)
	}
	return payload, nil
}
