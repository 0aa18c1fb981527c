package wire

import (
	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/identity"
	"ecommerce-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	idp identity.Provider,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Profile routes need a resolved caller identity
	r.With(middleware.AuthToken(idp, log)).Route("/api/auth/profile", func(r chi.Router) {
		r.Get("/", authHandler.GetProfile)
		r.Put("/", authHandler.UpdateProfile)
	})
}
