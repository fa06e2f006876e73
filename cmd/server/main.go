package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/keeper-reveal/internal/broker"
	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/countdown"
	"github.com/MKhiriev/keeper-reveal/internal/crypto"
	"github.com/MKhiriev/keeper-reveal/internal/handler"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/server"
	"github.com/MKhiriev/keeper-reveal/internal/service"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("keeper-reveal-server")
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("error loading .env")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping the default")
	}
	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("storage", cfg.Storage.Driver).Str("nats", cfg.Broker.NATSURL).Msg("received configs")

	bus, err := broker.New(cfg.Broker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating change bus")
	}
	defer bus.Close()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, bus, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	clock := clockwork.NewRealClock()
	codec := crypto.NewCodec()

	authority := service.NewRevealAuthority(storages.Submissions, codec, cfg.App, log)
	coordinator := countdown.NewCoordinator(clock, storages.Submissions, storages.State, authority, countdown.Options{
		Duration:       cfg.App.CountdownDuration,
		StaleThreshold: cfg.App.CountdownStaleThreshold,
	}, log)

	services, err := service.NewServices(storages, authority, coordinator, codec, clock, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewDeadlineTimer(clock, storages.State, coordinator, cfg, log),
		workers.NewEventRelay(bus, coordinator, handlers.Hub, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
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
