package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/handler"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/server"
	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pass-the-pages-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}
	if buildDate != "N/A" {
		cfg.App.BuildDate = buildDate
	}
	if buildCommit != "N/A" {
		cfg.App.BuildCommit = buildCommit
	}
	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var reporter workers.StatusReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	backgroundWorkers := workers.NewWorkers(storages, reporter, cfg.Workers, log)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
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
