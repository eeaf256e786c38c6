package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-shopping-sync/internal/config"
	"github.com/MKhiriev/go-shopping-sync/internal/logger"
)

// appInfoService answers GET /api/version with the configured build version.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("func", "NewAppInfoService").Str("version", version).Msg("serving app version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
