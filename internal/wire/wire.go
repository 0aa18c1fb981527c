package wire

import (
	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/identity"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, idp identity.Provider, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, idp, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, idp, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	idp identity.Provider,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.ServerID(config.App.ServerID))

	wireAuth(r, handler.Auth, idp, logger)
	wireSystem(r, handler.System)

	return r
}
