package service

import (
	"context"

	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns the service reporting build metadata. A non-empty
// cfg.Version overrides the version embedded at build time.
func NewAppInfoService(cfg config.App, info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version != "" {
		info.Version = cfg.Version
	}

	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
