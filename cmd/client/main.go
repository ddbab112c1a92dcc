package main

import (
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/adapter"
	"github.com/MKhiriev/levelup-fitness/internal/client"
	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/tui"
	"github.com/MKhiriev/levelup-fitness/internal/workers"
	"github.com/MKhiriev/levelup-fitness/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("fitness-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	completions, err := adapter.NewCompletionClient(cfg.Completion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create completion client")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, completions)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, workers.NewWorkers(services, cfg.Workers), log)
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
