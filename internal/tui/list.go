// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/stoa-vault/models"
)

// listTabs are the type tabs of the list screen. The empty type is "all".
var listTabs = append([]models.NoteType{""}, models.NoteTypes...)

type listModel struct {
	notes     []models.Note
	idx       int
	tab       int
	search    textinput.Model
	searching bool
	loading   bool
}

func newListModel() listModel {
	in := textinput.New()
	in.Placeholder = "search titles"
	in.Width = 40
	return listModel{search: in}
}

func (m listModel) filter() models.NoteFilter {
	return models.NoteFilter{
		Search: strings.TrimSpace(m.search.Value()),
		Type:   listTabs[m.tab],
	}
}

// newNoteType is the type of a note created from the current tab.
func (m listModel) newNoteType() models.NoteType {
	if t := listTabs[m.tab]; t != "" {
		return t
	}
	return models.Thought
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m listModel) shiftTab(delta int) listModel {
	m.tab = (m.tab + delta + len(listTabs)) % len(listTabs)
	m.idx = 0
	return m
}

func listIcon(t models.NoteType) string {
	switch t {
	case models.Journal:
		return "[J]"
	case models.Reflection:
		return "[R]"
	case models.Thought:
		return "[T]"
	case models.Archive:
		return "[A]"
	default:
		return "[?]"
	}
}

func tabLabel(t models.NoteType) string {
	if t == "" {
		return "all"
	}
	return string(t)
}

// View renders the list screen. quote fills the pane below the notes, the
// place where an opened note would otherwise be.
func (m listModel) View(p palette, userName, status string, quote stoicQuote) string {
	var b strings.Builder

	for i, t := range listTabs {
		if i == m.tab {
			b.WriteString(p.tabOn.Render(tabLabel(t)))
		} else {
			b.WriteString(p.tab.Render(tabLabel(t)))
		}
	}
	b.WriteString("\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: [" + m.search.View() + "]\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.notes) == 0:
		b.WriteString("No notes\n")
	default:
		for i, n := range m.notes {
			cursor := "  "
			line := fmt.Sprintf("%s %s", listIcon(n.Type), fitText(n.Title, 48))
			if n.IsPinned {
				line += " *"
			}
			if len(n.Tags) > 0 {
				line += "  #" + strings.Join(n.Tags, " #")
			}
			if i == m.idx {
				cursor = "> "
				line = p.selected.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if !m.searching {
		b.WriteString("\n" + quote.View(p) + "\n")
	}

	if status != "" {
		b.WriteString("\n" + p.status.Render(status) + "\n")
	}

	hotKeys := "n new  / search  p pin  d delete  t theme  x export  L lock  q quit  enter open"
	if m.searching {
		hotKeys = "enter: apply  esc: clear"
	}
	return renderPage("STOA  ·  "+p.accent.Render(userName), b.String(), hotKeys)
}
