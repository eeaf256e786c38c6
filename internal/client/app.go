package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/service"
	"github.com/MKhiriev/go-shopping-sync/internal/workers"
)

var errNoServices = errors.New("client services are not provided")

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || services.SyncService == nil || services.SyncJob == nil {
		return nil, errNoServices
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(logger, workers.NewSyncWorker(services.SyncJob, cfg.SyncInterval)),
		logger:   logger,
	}, nil
}

// Run synchronizes once, then keeps the periodic sync worker running until
// SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if err := a.services.SyncService.Sync(ctx); err != nil {
		// the worker retries on its next tick
		a.logger.Warn().Err(err).Str("func", "*App.run").Msg("start-up sync failed")
	}

	a.workers.Run(ctx)
	<-ctx.Done()
	a.workers.Stop()

	a.logger.Info().Msg("client stopped")
	return nil
}
