package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deed-keeper/internal/app"
	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-deed-keeper", "info").Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("go-deed-keeper", cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("registry_file", cfg.Storage.Files.RegistryFile).Msg("received configs")

	ctx := context.Background()

	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = application.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("app run error")
	}
}
