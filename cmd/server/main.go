package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/handler"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/server"
	"github.com/MKhiriev/go-shopping-sync/internal/service"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
	"github.com/MKhiriev/go-shopping-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("shopping-sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
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
