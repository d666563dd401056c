// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/stoa-vault/internal/logger"
	"github.com/MKhiriev/stoa-vault/internal/service"
	"github.com/MKhiriev/stoa-vault/models"
)

// ErrUserQuit is returned when the UI is stopped by a signal.
var ErrUserQuit = errors.New("user quit")

// TUI is the interactive host of one vault.
type TUI struct {
	services  *service.Services
	exportDir string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, exportDir string, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, exportDir: exportDir, buildInfo: buildInfo, logger: log}
}

// Run blocks until the user quits. The vault is locked on the way out.
func (t *TUI) Run(ctx context.Context) error {
	defer t.services.Vault.Lock()

	model := newAppModel(t.logger.WithContext(ctx), t.services, t.exportDir, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ErrUserQuit
	}
	return err
}
