// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrInvalidNoteType = errors.New("invalid note type")
)
