// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Snapshot is a portable copy of the whole vault. Every field holds the
// record exactly as it is stored: note envelopes stay encrypted and the salt
// travels in the clear.
type Snapshot struct {
	Notes    json.RawMessage `json:"notes"`
	Settings json.RawMessage `json:"settings"`
	Salt     json.RawMessage `json:"salt"`
}
