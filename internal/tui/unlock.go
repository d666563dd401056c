// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type unlockModel struct {
	input    textinput.Model
	spinner  spinner.Model
	deriving bool
	cancel   context.CancelFunc
	message  string
}

func newUnlockModel() unlockModel {
	in := textinput.New()
	in.Placeholder = "passphrase"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.Width = 40
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return unlockModel{input: in, spinner: s}
}

func (m unlockModel) View() string {
	var b strings.Builder

	b.WriteString("Passphrase: [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.deriving {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" deriving key...\n")
	}
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.message)
		b.WriteString("\n")
	}

	hotKeys := "enter: unlock  ctrl+v: about"
	if m.deriving {
		hotKeys = "esc: cancel"
	}
	return renderPage("STOA  ·  unlock", b.String(), hotKeys)
}
