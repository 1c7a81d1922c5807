package http

import (
	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/service"
	"github.com/MKhiriev/six-cities/internal/store"
	"github.com/MKhiriev/six-cities/internal/validators"
)

type Handler struct {
	services  *service.Services
	files     store.FileStorage
	validator validators.Validator
	metrics   *metrics

	cfg    config.StructuredConfig
	logger *logger.Logger
}

func NewHandler(services *service.Services, files store.FileStorage, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		files:     files,
		validator: validators.NewStructValidator(),
		metrics:   newMetrics(),
		cfg:       cfg,
		logger:    logger,
	}
}
