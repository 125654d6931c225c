package main

import (
	"fmt"

	"github.com/houseiq/houseiq-client/internal/adapter"
	"github.com/houseiq/houseiq-client/internal/client"
	"github.com/houseiq/houseiq-client/internal/config"
	"github.com/houseiq/houseiq-client/internal/logger"
	"github.com/houseiq/houseiq-client/internal/service"
	"github.com/houseiq/houseiq-client/internal/store"
	"github.com/houseiq/houseiq-client/internal/tui"
	"github.com/houseiq/houseiq-client/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("houseiq-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	creds := store.NewCredentialStore(cfg.Storage.CredentialsPath, log)
	services := service.NewClientServices(serverAdapter, creds, log)
	health := workers.NewHealthWorker(serverAdapter, cfg.Workers.HealthInterval, log)

	ui, err := tui.New(services, health, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, health, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
