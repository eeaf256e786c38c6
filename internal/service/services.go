package service

import (
	"fmt"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
)

type Services struct {
	SyncService    SyncService
	AppInfoService AppInfoService
}

// NewServices wires the server services. Sync requests pass through logging
// and validation before reaching the reconciliation engine.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	syncService := NewSyncService(storages.SyncStorage, cfg.Sync, logger)
	syncService = NewSyncValidationService().Wrap(syncService)
	syncService = NewSyncLoggingService().Wrap(syncService)

	return &Services{
		SyncService:    syncService,
		AppInfoService: appInfoService,
	}, nil
}
