package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ecommerce-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider is a self-hosted identity provider for development and
// test deployments where no Firebase project is available. Accounts live
// in Postgres, passwords are bcrypt hashed, tokens are HS256 JWTs.
type LocalProvider struct {
	db          database.PgxIface
	tokenSecret []byte
	tokenTTL    time.Duration
	log         *zap.Logger
}

type LocalConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

func NewLocalProvider(db database.PgxIface, cfg LocalConfig, log *zap.Logger) *LocalProvider {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &LocalProvider{
		db:          db,
		tokenSecret: []byte(cfg.TokenSecret),
		tokenTTL:    ttl,
		log:         log,
	}
}

type localAccount struct {
	UID          string
	Email        string
	PasswordHash string
	DisplayName  string
	IsAdmin      bool
}

func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidCredentialFormat
	}
	if len(password) < 6 {
		return nil, ErrInvalidCredentialFormat
	}

	existing, err := p.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	uid := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO identity_accounts (uid, email, password_hash, display_name, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := p.db.Exec(ctx, query, uid, email, string(hash), "", false, now, now); err != nil {
		p.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("create account %s: %w", email, err)
	}

	return &Account{UID: uid, Email: email}, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := p.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		// Same failure as a wrong password, callers must not learn which.
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &Account{
		UID:         account.UID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
	}, nil
}

func (p *LocalProvider) IssueToken(ctx context.Context, uid string) (string, error) {
	account, err := p.findByUID(ctx, uid)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrAccountNotFound
	}

	return signSessionToken(p.tokenSecret, uid, account.IsAdmin, p.tokenTTL)
}

func (p *LocalProvider) VerifyToken(_ context.Context, token string) (string, error) {
	claims, err := parseSessionToken(p.tokenSecret, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (p *LocalProvider) SetPrivilegeClaims(ctx context.Context, uid string, claims Claims) error {
	account, err := p.findByUID(ctx, uid)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	if account.IsAdmin == claims.Admin {
		// Idempotent re-assert.
		return nil
	}

	query := `UPDATE identity_accounts SET is_admin = $2, updated_at = $3 WHERE uid = $1`
	if _, err := p.db.Exec(ctx, query, uid, claims.Admin, time.Now()); err != nil {
		p.log.Error("Failed to set privilege claims",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return fmt.Errorf("set claims for %s: %w", uid, err)
	}

	return nil
}

func (p *LocalProvider) UpdateDisplayName(ctx context.Context, uid, name string) error {
	query := `UPDATE identity_accounts SET display_name = $2, updated_at = $3 WHERE uid = $1`

	result, err := p.db.Exec(ctx, query, uid, name, time.Now())
	if err != nil {
		p.log.Error("Failed to update display name",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return fmt.Errorf("update display name for %s: %w", uid, err)
	}
	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (p *LocalProvider) findByEmail(ctx context.Context, email string) (*localAccount, error) {
	query := `
		SELECT uid, email, password_hash, display_name, is_admin
		FROM identity_accounts
		WHERE email = $1
	`

	var account localAccount
	err := p.db.QueryRow(ctx, query, email).Scan(
		&account.UID,
		&account.Email,
		&account.PasswordHash,
		&account.DisplayName,
		&account.IsAdmin,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		p.log.Error("Failed to find account by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find account by email %s: %w", email, err)
	}

	return &account, nil
}

func (p *LocalProvider) findByUID(ctx context.Context, uid string) (*localAccount, error) {
	query := `
		SELECT uid, email, password_hash, display_name, is_admin
		FROM identity_accounts
		WHERE uid = $1
	`

	var account localAccount
	err := p.db.QueryRow(ctx, query, uid).Scan(
		&account.UID,
		&account.Email,
		&account.PasswordHash,
		&account.DisplayName,
		&account.IsAdmin,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		p.log.Error("Failed to find account by uid",
			zap.Error(err),
			zap.String("uid", uid),
		)
		return nil, fmt.Errorf("find account by uid %s: %w", uid, err)
	}

	return &account, nil
}
