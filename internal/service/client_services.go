package service

import (
	"github.com/MKhiriev/go-shopping-sync/internal/adapter"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
)

type ClientServices struct {
	ListService ClientListService
	SyncService ClientSyncService
	SyncJob     ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	logger.Info().Msg("creating new client services...")

	syncSvc := NewClientSyncService(storages.LocalStorage, serverAdapter, logger)

	return &ClientServices{
		ListService: NewClientListService(storages.LocalStorage, logger),
		SyncService: syncSvc,
		SyncJob:     NewClientSyncJob(syncSvc),
	}
}
