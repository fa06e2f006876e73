package main

import (
	"fmt"

	"github.com/MKhiriev/keeper-reveal/internal/adapter"
	"github.com/MKhiriev/keeper-reveal/internal/client"
	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/tui"
	"github.com/MKhiriev/keeper-reveal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := config.LoadDotEnv(); err != nil {
		logger.NewLogger("keeper-client").Fatal().Err(err).Msg("error loading .env")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("keeper-client").Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the board, so logs go to a file
	log := logger.NewFileLogger("keeper-client", cfg.Adapter.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level, keeping default")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui := tui.New(serverAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(serverAdapter, ui, log)
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
