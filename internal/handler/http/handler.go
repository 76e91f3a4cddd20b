package http

import (
	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/service"
)

// Handler bundles the service layer with everything the HTTP routes need:
// the structured logger and the file serving configuration for the local
// storage backend.
type Handler struct {
	services *service.Services

	filesCfg config.Files

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler aggregate.
func NewHandler(services *service.Services, filesCfg config.Files, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		filesCfg: filesCfg,
		logger:   logger,
	}
}
