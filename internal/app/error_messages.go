// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the interactive UI
// and the command-line host.
//
// All Msg* constants are human-readable messages shown instead of the raw
// error chain. Keeping them in one place keeps the wording consistent between
// the two hosts.
package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/stoa-vault/internal/crypto"
	"github.com/MKhiriev/stoa-vault/internal/service"
	"github.com/MKhiriev/stoa-vault/internal/store"
	"github.com/MKhiriev/stoa-vault/internal/validators"
	"github.com/MKhiriev/stoa-vault/internal/vault"
)

const (
	// MsgWrongPassphrase is shown when a note fails authentication. The
	// vault cannot tell a wrong passphrase from a damaged envelope.
	MsgWrongPassphrase = "incorrect passphrase or corrupted note"

	// MsgVaultLocked is shown when an operation needs the key but the vault
	// is locked.
	MsgVaultLocked = "the vault is locked"

	// MsgAlreadyUnlocked is shown on a second unlock attempt.
	MsgAlreadyUnlocked = "the vault is already unlocked"

	MsgEmptyPassphrase = "passphrase must not be empty"
	MsgUnlockCancelled = "unlock cancelled"

	// MsgCorruptedVault is shown when a stored record cannot be decoded.
	MsgCorruptedVault = "vault data is corrupted"

	MsgNoteNotFound    = "note not found"
	MsgInvalidNote     = "note is invalid"
	MsgInvalidSettings = "settings are invalid"
	MsgUnknownNoteType = "unknown note type"
)

// UserMessage returns the message for the first known error in err's chain,
// or err.Error() when none matches.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return MsgUnlockCancelled
	case errors.Is(err, crypto.ErrEmptyPassphrase):
		return MsgEmptyPassphrase
	case errors.Is(err, vault.ErrDecryption):
		return MsgWrongPassphrase
	case errors.Is(err, vault.ErrNotInitialized):
		return MsgVaultLocked
	case errors.Is(err, vault.ErrAlreadyUnlocked):
		return MsgAlreadyUnlocked
	case errors.Is(err, store.ErrMalformedRecord):
		return MsgCorruptedVault
	case errors.Is(err, service.ErrNoteNotFound):
		return MsgNoteNotFound
	case errors.Is(err, service.ErrInvalidNoteType):
		return MsgUnknownNoteType
	case errors.Is(err, validators.ErrInvalidNote):
		return MsgInvalidNote + ": " + err.Error()
	case errors.Is(err, validators.ErrInvalidSettings):
		return MsgInvalidSettings + ": " + err.Error()
	default:
		return err.Error()
	}
}
