package tui

import (
	"fmt"

	"github.com/MKhiriev/stoa-vault/models"
)

const confirmTitleWidth = 40

// confirmModel asks before a note is removed from the vault.
type confirmModel struct {
	noteID string
	title  string
	kind   models.NoteType
}

func newDeleteConfirm(note models.Note) confirmModel {
	return confirmModel{noteID: note.ID, title: note.Title, kind: note.Type}
}

// pending reports whether a delete is waiting for an answer.
func (m confirmModel) pending() bool {
	return m.noteID != ""
}

func (m confirmModel) View() string {
	title := m.title
	if title == "" {
		title = "(untitled)"
	}
	kind := "note"
	if m.kind != "" {
		kind = string(m.kind)
	}
	content := fmt.Sprintf("Delete %s %q?\n", kind, fitText(title, confirmTitleWidth))
	content += "The encrypted content cannot be recovered.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
