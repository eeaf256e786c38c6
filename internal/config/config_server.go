package config

import (
	"fmt"
	"time"
)

const (
	defaultSyncMaxAttempts = 3
	defaultServerVersion   = "dev"
)

// ServerConfig is the server-side configuration view assembled from
// [StructuredConfig], with defaults applied.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Sync    Sync
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg onto a [ServerConfig] and fills in defaults for
// unset optional fields. The result is not validated.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Sync:    cfg.Sync,
	}

	if serverCfg.App.Version == "" {
		serverCfg.App.Version = defaultServerVersion
	}
	if serverCfg.Storage.DB.Driver == "" {
		serverCfg.Storage.DB.Driver = DriverPostgres
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = 30 * time.Second
	}
	if serverCfg.Sync.MaxAttempts == 0 {
		serverCfg.Sync.MaxAttempts = defaultSyncMaxAttempts
	}
	if serverCfg.Sync.DanglingReferences == "" {
		serverCfg.Sync.DanglingReferences = DanglingReferencesRepair
	}

	return serverCfg
}
