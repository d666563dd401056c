// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/stoa-vault/internal/app"
	"github.com/MKhiriev/stoa-vault/internal/crypto"
	"github.com/MKhiriev/stoa-vault/internal/service"
	"github.com/MKhiriev/stoa-vault/models"
)

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenNote
)

var (
	defaultClipboardWrite = clipboard.WriteAll

	// clipboardWrite is replaced in tests.
	clipboardWrite = defaultClipboardWrite
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	exportDir string
	buildInfo models.AppBuildInfo

	currentScreen screen
	unlock        unlockModel
	list          listModel
	note          noteModel

	settings models.Settings
	palette  palette
	status   string
	quote    stoicQuote

	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool

	width  int
	height int
}

func newAppModel(ctx context.Context, services *service.Services, exportDir string, buildInfo models.AppBuildInfo) appModel {
	settings := models.DefaultSettings()
	return appModel{
		ctx:           ctx,
		services:      services,
		exportDir:     exportDir,
		buildInfo:     buildInfo,
		currentScreen: screenUnlock,
		unlock:        newUnlockModel(),
		list:          newListModel(),
		settings:      settings,
		palette:       newPalette(settings.Theme),
		quote:         randomQuote(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadSettings())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.currentScreen == screenNote {
			m.note = m.note.resize(m.width)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.unlock.cancel != nil {
				m.unlock.cancel()
			}
			return m, tea.Quit
		}
		if m.errorOverlay.visible() {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.errorOverlay = errorOverlayModel{}
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				pending := m.confirm
				m.confirm = confirmModel{}
				if !pending.pending() {
					return m, nil
				}
				return m, m.cmdDeleteNote(pending.noteID)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}

		switch m.currentScreen {
		case screenUnlock:
			return m.updateUnlock(msg)
		case screenList:
			return m.updateList(msg)
		case screenNote:
			return m.updateNote(msg)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.unlock.deriving {
			return m, nil
		}
		var cmd tea.Cmd
		m.unlock.spinner, cmd = m.unlock.spinner.Update(msg)
		return m, cmd
	case unlockDoneMsg:
		m.unlock.deriving = false
		m.unlock.cancel = nil
		m.unlock.input.Reset()
		if msg.err != nil {
			m.unlock.message = app.UserMessage(msg.err)
			return m, textinput.Blink
		}
		m.unlock.message = ""
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadNotes()
	case notesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showError(app.UserMessage(msg.err))
			return m, nil
		}
		m.list.notes = msg.notes
		if m.list.idx >= len(m.list.notes) {
			m.list.idx = len(m.list.notes) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case noteCreatedMsg:
		if msg.err != nil {
			m.showError(app.UserMessage(msg.err))
			return m, nil
		}
		m.note = newNoteModel(msg.note).resize(m.width)
		m.note.loaded = true
		m.currentScreen = screenNote
		var cmd tea.Cmd
		m.note, cmd = m.note.startEdit()
		return m, tea.Batch(cmd, m.cmdLoadNotes())
	case noteOpenedMsg:
		if m.currentScreen != screenNote || msg.id != m.note.note.ID {
			return m, nil
		}
		if msg.err != nil {
			m.currentScreen = screenList
			m.showError(app.UserMessage(msg.err))
			return m, nil
		}
		if !msg.ok {
			return m.toLocked("Vault locked")
		}
		m.note.content = msg.content
		m.note.loaded = true
		return m, nil
	case noteSavedMsg:
		m.note.saving = false
		if msg.err != nil {
			m.showError(app.UserMessage(msg.err))
			return m, nil
		}
		m.note.note = msg.note
		m.note.content = msg.content
		m.note.editing = false
		return m.withStatus("Saved", m.cmdLoadNotes())
	case noteChangedMsg:
		if msg.err != nil {
			m.showError(app.UserMessage(msg.err))
			return m, nil
		}
		return m.withStatus(msg.status, m.cmdLoadNotes())
	case settingsMsg:
		if msg.err != nil {
			m.showError(app.UserMessage(msg.err))
			return m, nil
		}
		m.settings = msg.settings
		m.palette = newPalette(msg.settings.Theme)
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.showError("Export failed: " + app.UserMessage(msg.err))
			return m, nil
		}
		return m.withStatus("Exported to "+msg.path, nil)
	case copiedMsg:
		if msg.err != nil {
			m.showError(fmt.Sprintf("Copy to clipboard: %v", msg.err))
			return m, nil
		}
		return m.withStatus("Copied to clipboard", nil)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if m.currentScreen == screenNote && m.note.editing {
		var cmd tea.Cmd
		m.note, cmd = m.note.updateInputs(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.unlock.deriving {
		if key.Matches(msg, keys.esc) && m.unlock.cancel != nil {
			m.unlock.cancel()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.enter):
		value := m.unlock.input.Value()
		if value == "" {
			m.unlock.message = app.MsgEmptyPassphrase
			return m, nil
		}

		ctx, cancel := context.WithCancel(m.ctx)
		m.unlock.cancel = cancel
		m.unlock.deriving = true
		m.unlock.message = ""
		return m, tea.Batch(m.unlock.spinner.Tick, m.cmdUnlock(ctx, cancel, []byte(value)))
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		switch {
		case key.Matches(msg, keys.enter):
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		case key.Matches(msg, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.Reset()
			m.list.idx = 0
			return m, m.cmdLoadNotes()
		}

		before := m.list.search.Value()
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		if m.list.search.Value() != before {
			m.list.idx = 0
			return m, tea.Batch(cmd, m.cmdLoadNotes())
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		m.list = m.list.shiftTab(1)
		return m, m.cmdLoadNotes()
	case key.Matches(msg, keys.left), key.Matches(msg, keys.backtab):
		m.list = m.list.shiftTab(-1)
		return m, m.cmdLoadNotes()
	case key.Matches(msg, keys.search):
		m.list.searching = true
		cmd := m.list.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.note = newNoteModel(note).resize(m.width)
		m.currentScreen = screenNote
		return m, m.cmdOpenNote(note.ID)
	case key.Matches(msg, keys.newItem):
		return m, m.cmdCreateNote(m.list.newNoteType())
	case key.Matches(msg, keys.pin):
		if note, ok := m.list.current(); ok {
			return m, m.cmdSetPinned(note.ID, !note.IsPinned)
		}
	case key.Matches(msg, keys.delete):
		if note, ok := m.list.current(); ok {
			m.confirm = newDeleteConfirm(note)
			m.showConfirm = true
		}
	case key.Matches(msg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(msg, keys.export):
		return m, m.cmdExport()
	case key.Matches(msg, keys.lock):
		return m.toLocked("Vault locked")
	}
	return m, nil
}

func (m appModel) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.note.editing {
		if m.note.saving {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.save):
			m.note.saving = true
			return m, m.cmdSaveNote(m.note.note.ID, strings.TrimSpace(m.note.title.Value()), m.note.body.Value())
		case key.Matches(msg, keys.esc):
			m.note.editing = false
			m.note.title.Blur()
			m.note.body.Blur()
			return m, nil
		case key.Matches(msg, keys.tab):
			var cmd tea.Cmd
			m.note, cmd = m.note.toggleFocus()
			return m, cmd
		}

		var cmd tea.Cmd
		m.note, cmd = m.note.updateInputs(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		m.note = noteModel{}
		return m, m.cmdLoadNotes()
	case key.Matches(msg, keys.edit):
		if m.note.loaded {
			var cmd tea.Cmd
			m.note, cmd = m.note.startEdit()
			return m, cmd
		}
	case key.Matches(msg, keys.copy):
		if m.note.loaded {
			return m, cmdCopyToClipboard(m.note.content)
		}
	case key.Matches(msg, keys.lock):
		return m.toLocked("Vault locked")
	}
	return m, nil
}

// toLocked locks the vault, drops the decrypted note held by the UI and
// returns to the unlock screen.
func (m appModel) toLocked(message string) (appModel, tea.Cmd) {
	m.services.Vault.Lock()
	m.note = noteModel{}
	m.list.searching = false
	m.currentScreen = screenUnlock
	m.unlock = newUnlockModel()
	m.unlock.message = message
	return m, textinput.Blink
}

func (m appModel) withStatus(status string, cmd tea.Cmd) (appModel, tea.Cmd) {
	m.status = status
	return m, tea.Batch(cmd, cmdClearStatus())
}

func (m *appModel) showError(message string) {
	m.errorOverlay = errorOverlayModel{message: message}
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var base string
	switch m.currentScreen {
	case screenList:
		base = m.list.View(m.palette, m.settings.UserName, m.status, m.quote)
	case screenNote:
		base = m.note.View(m.palette, m.status)
	default:
		base = m.unlock.View()
	}

	switch {
	case m.errorOverlay.visible():
		return m.overlay(m.errorOverlay.View())
	case m.showConfirm:
		return m.overlay(m.confirm.View())
	}
	return base
}

func (m appModel) overlay(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m appModel) cmdUnlock(ctx context.Context, cancel context.CancelFunc, passphrase []byte) tea.Cmd {
	svc := m.services.Vault
	return func() tea.Msg {
		defer cancel()
		defer crypto.SecureWipe(passphrase)
		return unlockDoneMsg{err: svc.Unlock(ctx, passphrase)}
	}
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings
	return func() tea.Msg {
		settings, err := svc.Get(ctx)
		return settingsMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	filter := m.list.filter()
	return func() tea.Msg {
		notes, err := svc.List(ctx, filter)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m appModel) cmdCreateNote(noteType models.NoteType) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		note, err := svc.Create(ctx, noteType)
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m appModel) cmdOpenNote(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		content, ok, err := svc.Open(ctx, id)
		return noteOpenedMsg{id: id, content: content, ok: ok, err: err}
	}
}

func (m appModel) cmdSaveNote(id, title, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		note, err := svc.Save(ctx, id, title, content)
		return noteSavedMsg{note: note, content: content, err: err}
	}
}

func (m appModel) cmdDeleteNote(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		return noteChangedMsg{status: "Note deleted", err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdSetPinned(id string, pinned bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	return func() tea.Msg {
		_, err := svc.SetPinned(ctx, id, pinned)
		status := "Unpinned"
		if pinned {
			status = "Pinned"
		}
		return noteChangedMsg{status: status, err: err}
	}
}

func (m appModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings
	return func() tea.Msg {
		settings, err := svc.ToggleTheme(ctx)
		return settingsMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Export
	dir := m.exportDir
	return func() tea.Msg {
		path, err := svc.WriteFile(ctx, dir, time.Now())
		return exportDoneMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
