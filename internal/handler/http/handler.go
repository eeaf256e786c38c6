package http

import (
	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/service"
	"github.com/MKhiriev/go-shopping-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher

	// maxBodyBytes caps POST /api/sync bodies; zero means maxSyncBodyBytes.
	maxBodyBytes int64

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. Request bodies are checked against
// the HashSHA256 header when cfg.HashKey is set.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("integrity_check", cfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(cfg.HashKey),
		logger:   logger,
	}
}
