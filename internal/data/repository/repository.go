package repository

import (
	"ecommerce-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Profile ProfileStore
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Profile: NewProfileRepository(db, log),
	}
}
