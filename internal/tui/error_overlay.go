package tui

import "github.com/charmbracelet/lipgloss"

const errorOverlayWidth = 48

// errorOverlayModel shows the user-facing text of a failed operation on top
// of the current screen until it is dismissed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) visible() bool {
	return m.message != ""
}

func (m errorOverlayModel) View() string {
	body := lipgloss.NewStyle().Width(errorOverlayWidth).Render(m.message)
	content := errorStyle.Render("Error") + "\n\n" + body + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
