package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/internal/identity"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetProfile(ctx context.Context, uid string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, uid string, req *request.UpdateProfileRequest) error
}

// authService orchestrates the identity provider and the profile store.
// Each operation is an ordered two-adapter sequence with no cross-adapter
// rollback: a crash mid-sequence can leave an identity without a profile
// (or the reverse). Login heals the first case lazily, the rest is an
// accepted limitation.
type authService struct {
	idp      identity.Provider
	profiles repository.ProfileStore
	log      *zap.Logger
}

func NewAuthService(
	idp identity.Provider,
	profiles repository.ProfileStore,
	log *zap.Logger,
) AuthService {
	return &authService{
		idp:      idp,
		profiles: profiles,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate before touching any adapter
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	role := entity.RoleCustomer
	if req.Role != "" {
		role = entity.Role(req.Role)
	}

	// 2. Create account in the identity provider
	account, err := s.idp.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Error("Failed to create account", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	// 3. Propagate the display name
	if err := s.idp.UpdateDisplayName(ctx, account.UID, req.Name); err != nil {
		s.log.Error("Failed to set display name", zap.Error(err), zap.String("uid", account.UID))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	// 4. Upsert the profile document
	now := time.Now()
	profile := &entity.UserProfile{
		UID:       account.UID,
		Email:     req.Email,
		Name:      req.Name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profiles.Put(ctx, profile); err != nil {
		s.log.Error("Failed to store profile", zap.Error(err), zap.String("uid", account.UID))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	// 5. Admin role carries a privilege claim on the identity
	if role == entity.RoleAdmin {
		if err := s.idp.SetPrivilegeClaims(ctx, account.UID, identity.Claims{Admin: true}); err != nil {
			s.log.Error("Failed to set admin claim", zap.Error(err), zap.String("uid", account.UID))
			return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
		}
	}

	// 6. Issue the session token
	token, err := s.idp.IssueToken(ctx, account.UID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("uid", account.UID))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	s.log.Info("User registered",
		zap.String("uid", account.UID),
		zap.String("email", req.Email),
		zap.String("role", string(role)),
	)

	return &response.AuthResponse{
		User: response.UserResponse{
			UID:   account.UID,
			Email: req.Email,
			Name:  req.Name,
			Role:  role,
		},
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Verify credentials. Every failure from here on surfaces as
	// invalid credentials so callers cannot probe for accounts.
	account, err := s.idp.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Warn("Sign-in rejected", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 3. Look up the profile, lazily creating one for identities that
	// predate the profile store
	profile, err := s.profiles.Get(ctx, account.UID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("uid", account.UID))
		return nil, ErrInvalidCredentials
	}

	if profile == nil {
		name := account.DisplayName
		if name == "" {
			name = emailLocalPart(account.Email)
		}

		now := time.Now()
		profile = &entity.UserProfile{
			UID:       account.UID,
			Email:     account.Email,
			Name:      name,
			Role:      entity.RoleCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.profiles.Put(ctx, profile); err != nil {
			s.log.Error("Failed to create missing profile", zap.Error(err), zap.String("uid", account.UID))
			return nil, ErrInvalidCredentials
		}

		s.log.Info("Profile created at login", zap.String("uid", account.UID))
	}

	// 4. Make sure admins carry the privilege claim. The provider treats
	// re-assertion as a no-op.
	if profile.Role == entity.RoleAdmin {
		if err := s.idp.SetPrivilegeClaims(ctx, account.UID, identity.Claims{Admin: true}); err != nil {
			s.log.Error("Failed to assert admin claim", zap.Error(err), zap.String("uid", account.UID))
			return nil, ErrInvalidCredentials
		}
	}

	// 5. Issue the session token
	token, err := s.idp.IssueToken(ctx, account.UID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("uid", account.UID))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.String("uid", account.UID),
		zap.String("email", account.Email),
	)

	return &response.AuthResponse{
		User: response.UserResponse{
			UID:   account.UID,
			Email: account.Email,
			Name:  profile.Name,
			Role:  profile.Role,
		},
		Token: token,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, uid string) (*response.ProfileResponse, error) {
	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("uid", uid))
		return nil, fmt.Errorf("failed to retrieve user profile: %v", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	return response.ProfileToResponse(profile), nil
}

func (s *authService) UpdateProfile(ctx context.Context, uid string, req *request.UpdateProfileRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	patch := entity.ProfilePatch{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.profiles.Patch(ctx, uid, patch, time.Now()); err != nil {
		s.log.Error("Failed to patch profile", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}

	// Keep the provider's display name in step. Best effort only, the
	// store write above is already committed.
	if req.Name != nil {
		if err := s.idp.UpdateDisplayName(ctx, uid, *req.Name); err != nil {
			s.log.Warn("Failed to sync display name", zap.Error(err), zap.String("uid", uid))
		}
	}

	s.log.Info("Profile updated", zap.String("uid", uid))
	return nil
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
