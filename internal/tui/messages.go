// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/stoa-vault/models"
)

type unlockDoneMsg struct {
	err error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

type noteOpenedMsg struct {
	id      string
	content string
	ok      bool
	err     error
}

type noteSavedMsg struct {
	note    models.Note
	content string
	err     error
}

type noteChangedMsg struct {
	status string
	err    error
}

type settingsMsg struct {
	settings models.Settings
	err      error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
