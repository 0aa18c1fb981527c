package adaptor

import (
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	System *SystemHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		System: NewSystemHandler(config.App.ServerID, config.App.Name),
	}
}
