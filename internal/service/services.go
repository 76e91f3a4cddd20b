package service

import (
	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/store"
)

// Services aggregates every business-logic dependency of the HTTP layer.
type Services struct {
	AuthService  AuthService
	ModelService ModelService
}

// NewServices wires the service layer on top of the given storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ModelService: NewModelService(storages.ModelRepository, storages.RatingRepository, storages.FileStorage, logger),
	}
}
