package http

import (
	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/service"
)

type Handler struct {
	services *service.Services

	// hashKey enables the plan-upload integrity check. Empty disables it.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, security config.Security, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  security.HashKey,
		logger:   logger,
	}
}
