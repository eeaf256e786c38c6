package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shopping-sync/internal/adapter"
	"github.com/MKhiriev/go-shopping-sync/internal/client"
	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/service"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
	"github.com/MKhiriev/go-shopping-sync/models"
)

const logFile = "shopping-sync-client.log"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewFileLogger("shopping-sync-client", logFile)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, log)

	app, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
