// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SaltRecordVersion is the format version written into new salt records.
const SaltRecordVersion = 1

// SaltRecord is the persisted form of the vault salt together with the key
// derivation parameters it was created for. It is written exactly once per
// vault and never modified afterwards.
type SaltRecord struct {
	// Version is the record format version.
	Version int `json:"version"`

	// KDF names the key derivation function, e.g. "pbkdf2-sha256" or
	// "argon2id".
	KDF string `json:"kdf"`

	// Iterations is the PBKDF2 iteration count.
	Iterations int `json:"iterations,omitempty"`

	// Time, Memory and Threads are the Argon2id cost parameters.
	Time    uint32 `json:"time,omitempty"`
	Memory  uint32 `json:"memory,omitempty"`
	Threads uint8  `json:"threads,omitempty"`

	// Salt is the text-encoded random salt.
	Salt string `json:"salt"`
}
