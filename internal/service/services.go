package service

import (
	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/crypto"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/validators"
)

type Services struct {
	UserService UserService
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		UserService: NewUserService(storages.UserRepository, hasher, cfg.Workers, logger),
		AuthService: NewAuthService(storages.UserRepository, storages.SessionRepository, hasher,
			validators.NewCredentialsValidator(), cfg.App, logger),
	}
}
