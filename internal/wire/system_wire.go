package wire

import (
	"ecommerce-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSystem(r chi.Router, systemHandler *adaptor.SystemHandler) {
	r.Get("/", systemHandler.Welcome)
	r.Get("/health", systemHandler.Health)
	r.Get("/server-info", systemHandler.ServerInfo)
}
