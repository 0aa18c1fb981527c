package repository

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProfileStore is the document-store contract the auth flow depends on.
// Get returns (nil, nil) when no profile exists for the uid.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (*entity.UserProfile, error)
	Put(ctx context.Context, profile *entity.UserProfile) error
	Patch(ctx context.Context, uid string, patch entity.ProfilePatch, updatedAt time.Time) error
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileStore {
	return &profileRepository{
		db:  db,
		log: log,
	}
}

func (pr *profileRepository) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	query := `
		SELECT uid, email, name, role, phone, address, created_at, updated_at
		FROM user_profiles
		WHERE uid = $1
	`

	var profile entity.UserProfile
	err := pr.db.QueryRow(ctx, query, uid).Scan(
		&profile.UID,
		&profile.Email,
		&profile.Name,
		&profile.Role,
		&profile.Phone,
		&profile.Address,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to get profile",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return nil, fmt.Errorf("get profile %s: %w", uid, err)
	}

	return &profile, nil
}

// Put is a full upsert keyed by uid.
func (pr *profileRepository) Put(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (uid, email, name, role, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (uid) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name, role = EXCLUDED.role,
		    phone = EXCLUDED.phone, address = EXCLUDED.address,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := pr.db.Exec(ctx, query,
		profile.UID,
		profile.Email,
		profile.Name,
		profile.Role,
		profile.Phone,
		profile.Address,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		pr.log.Error("Failed to put profile",
			zap.Error(err),
			zap.String("uid", profile.UID),
			zap.String("email", profile.Email),
		)
		return fmt.Errorf("put profile %s: %w", profile.UID, err)
	}

	return nil
}

// Patch merges only the supplied fields and refreshes updated_at.
func (pr *profileRepository) Patch(ctx context.Context, uid string, patch entity.ProfilePatch, updatedAt time.Time) error {
	set := "updated_at = $2"
	args := []any{uid, updatedAt}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set += fmt.Sprintf(", name = $%d", len(args))
	}
	if patch.Phone != nil {
		args = append(args, *patch.Phone)
		set += fmt.Sprintf(", phone = $%d", len(args))
	}
	if patch.Address != nil {
		args = append(args, *patch.Address)
		set += fmt.Sprintf(", address = $%d", len(args))
	}

	query := fmt.Sprintf("UPDATE user_profiles SET %s WHERE uid = $1", set)

	result, err := pr.db.Exec(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to patch profile",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return fmt.Errorf("patch profile %s: %w", uid, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s not found", uid)
	}

	return nil
}
