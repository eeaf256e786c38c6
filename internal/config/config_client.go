package config

import (
	"fmt"
	"time"
)

// ClientApp carries the client's copy of the shared request signing key.
type ClientApp struct {
	HashKey string
}

// ClientAdapter locates the sync server.
type ClientAdapter struct {
	// HTTPAddress is the server base URL; a bare host:port gets http://.
	HTTPAddress string
	// RequestTimeout bounds one POST /api/sync round trip.
	RequestTimeout time.Duration
}

// ClientDB points at the local SQLite store. It must be a file: the pending
// deletion journal and the sync cursor have to survive restarts.
type ClientDB struct {
	DSN string
}

type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers configures the periodic sync worker.
type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientConfig is the part of [StructuredConfig] the client runtime reads.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads env, flags and the optional JSON file, then
// projects and validates the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// NewClientConfig projects cfg onto a [ClientConfig] without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{}

	clientCfg.App.HashKey = cfg.App.HashKey
	clientCfg.Adapter.HTTPAddress = cfg.Adapter.HTTPAddress
	clientCfg.Adapter.RequestTimeout = cfg.Adapter.RequestTimeout
	clientCfg.Storage.DB.DSN = cfg.Storage.DB.DSN
	clientCfg.Workers.SyncInterval = cfg.Workers.SyncInterval

	return clientCfg
}
