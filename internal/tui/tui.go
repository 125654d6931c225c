// SPDX-License-Identifier: Apache-2.0

// Package tui implements the terminal user interface: a single Bubble Tea
// model that switches between screens (welcome, auth, dashboard, prediction
// form, result, history, detail) with error and confirmation overlays on top.
// Navigation between screens always goes through the route guard.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/internal/service"
	"github.com/houseiq/houseiq-client/internal/workers"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	health   *workers.HealthWorker
	logger   *logger.Logger
}

func New(services *service.ClientServices, health *workers.HealthWorker, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	return &TUI{services: services, health: health, logger: log}, nil
}

// Run drives one UI session and blocks until the user quits or logs out.
// Returns logout=true when the session ended via logout, so the caller can
// restart the flow at the welcome screen.
func (t *TUI) Run(ctx context.Context) (logout bool, err error) {
	model := newAppModel(ctx, t.services, t.health)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return false, result.err
	}
	return result.logout, nil
}
