package client

import (
	"context"
	"errors"

	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/internal/service"
	"github.com/houseiq/houseiq-client/internal/tui"
	"github.com/houseiq/houseiq-client/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	health   *workers.HealthWorker
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, health *workers.HealthWorker, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || health == nil {
		return nil, errors.New("services, ui and health worker are required")
	}
	return &App{services: services, tui: ui, health: health, logger: log}, nil
}

// Run hydrates the session once, starts the health probe and drives UI
// sessions until the user quits. A logout restarts the flow at the welcome
// screen instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()

	a.services.Session.Hydrate()
	a.logger.Info().Stringer("state", a.services.Session.State()).Msg("session hydrated")

	a.health.Start(ctx)
	defer a.health.Stop()

	for {
		logout, err := a.tui.Run(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}
