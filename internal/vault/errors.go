// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

// Sentinel errors of the vault session. All of them are recoverable: the
// session stays usable and the caller may retry with user input.
var (
	// ErrInitialization is returned by [Session.Initialize] when the salt
	// could not be generated, read, decoded or persisted, or when key
	// derivation failed or was cancelled. The session stays Locked.
	ErrInitialization = errors.New("vault: initialization failed")

	// ErrNotInitialized is returned by every cryptographic operation
	// attempted while the session is Locked.
	ErrNotInitialized = errors.New("vault: session is locked")

	// ErrDecryption is returned when an envelope fails authentication or is
	// malformed. With a well-formed vault this means the passphrase is wrong.
	ErrDecryption = errors.New("vault: incorrect passphrase or corrupted data")

	// ErrAlreadyUnlocked is returned by [Session.Initialize] on an Unlocked
	// session. The existing key is kept.
	ErrAlreadyUnlocked = errors.New("vault: session is already unlocked")
)
