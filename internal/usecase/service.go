package usecase

import (
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/identity"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
}

func NewService(repo *repository.Repository, idp identity.Provider, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(idp, repo.Profile, log),
	}
}
