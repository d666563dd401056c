// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault records before they are written.
//
// The service layer validates every models.Note and models.Settings it
// persists. Whole-record validation runs on create; edits pass the names of
// the fields they touched (see the Field* constants) so that, for example,
// retitling a note does not fail on an unrelated legacy tag.
//
// Failures wrap ErrInvalidNote or ErrInvalidSettings, and app.UserMessage
// turns them into text for the CLI and the TUI.
package validators

import "context"

// Validator validates a vault record. value is a models.Note or
// models.Settings, by value or pointer. When fields are given only those
// struct fields are checked; an unknown name yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}

var _ Validator = (*VaultValidator)(nil)
