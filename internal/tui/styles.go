// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/stoa-vault/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// palette holds the theme dependent styles.
type palette struct {
	accent   lipgloss.Style
	selected lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
	status   lipgloss.Style
}

func newPalette(theme models.Theme) palette {
	var fg, accent, muted lipgloss.Color
	switch theme {
	case models.ThemeDark:
		fg, accent, muted = "252", "111", "243"
	case models.ThemeSepia:
		fg, accent, muted = "94", "130", "137"
	default:
		fg, accent, muted = "235", "25", "245"
	}

	return palette{
		accent:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		selected: lipgloss.NewStyle().Foreground(fg).Bold(true),
		tab:      lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		tabOn:    lipgloss.NewStyle().Foreground(accent).Underline(true).Padding(0, 1),
		status:   lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
