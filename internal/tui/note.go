// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stoa-vault/models"
)

type noteModel struct {
	note    models.Note
	content string
	loaded  bool

	editing bool
	saving  bool
	focus   int
	title   textinput.Model
	body    textarea.Model
}

func newNoteModel(note models.Note) noteModel {
	title := textinput.New()
	title.Width = 60
	title.CharLimit = 256

	body := textarea.New()
	body.ShowLineNumbers = false
	body.SetWidth(72)
	body.SetHeight(14)
	body.CharLimit = 0

	return noteModel{note: note, title: title, body: body}
}

func (m noteModel) resize(width int) noteModel {
	if width > 16 {
		m.body.SetWidth(width - 8)
	}
	return m
}

// startEdit fills the editor from the decrypted note and focuses the body.
func (m noteModel) startEdit() (noteModel, tea.Cmd) {
	m.editing = true
	m.title.SetValue(m.note.Title)
	m.body.SetValue(m.content)
	m.focus = 1
	m.title.Blur()
	cmd := m.body.Focus()
	return m, cmd
}

func (m noteModel) toggleFocus() (noteModel, tea.Cmd) {
	if m.focus == 0 {
		m.focus = 1
		m.title.Blur()
		cmd := m.body.Focus()
		return m, cmd
	}
	m.focus = 0
	m.body.Blur()
	cmd := m.title.Focus()
	return m, cmd
}

func (m noteModel) updateInputs(msg tea.Msg) (noteModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m noteModel) View(p palette, status string) string {
	var b strings.Builder

	b.WriteString(string(m.note.Type))
	b.WriteString("  ·  updated ")
	b.WriteString(m.note.UpdatedAt.Local().Format("2006-01-02 15:04"))
	if len(m.note.Tags) > 0 {
		b.WriteString("  ·  #" + strings.Join(m.note.Tags, " #"))
	}
	b.WriteString("\n\n")

	var hotKeys string
	switch {
	case m.editing:
		b.WriteString("Title: [" + m.title.View() + "]\n\n")
		b.WriteString(m.body.View())
		b.WriteString("\n")
		hotKeys = "ctrl+s: save  tab: title/body  esc: discard"
		if m.saving {
			hotKeys = "saving..."
		}
	case !m.loaded:
		b.WriteString("Decrypting...\n")
		hotKeys = "esc: back"
	default:
		if m.content == "" {
			b.WriteString(helpStyle.Render("(empty)"))
		} else {
			b.WriteString(m.content)
		}
		b.WriteString("\n")
		hotKeys = "e edit  c copy  L lock  esc back"
	}

	if status != "" {
		b.WriteString("\n" + p.status.Render(status) + "\n")
	}

	return renderPage(p.accent.Render(m.note.Title), b.String(), hotKeys)
}
