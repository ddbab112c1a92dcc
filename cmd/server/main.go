package main

import (
	"fmt"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/handler"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/server"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/internal/store"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fitness-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// the version endpoint serves the ldflags-stamped version unless the
	// config overrides it
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	utils.InitHasherPool(cfg.Security.HashKey)

	storages, err := store.NewStorages(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(*storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
