package response

import (
	"time"

	"ecommerce-api/internal/data/entity"
)

type UserResponse struct {
	UID   string      `json:"uid"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  entity.Role `json:"role"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type ProfileResponse struct {
	UID       string      `json:"uid"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	Phone     *string     `json:"phone,omitempty"`
	Address   *string     `json:"address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ProfileToResponse maps the stored document to the closed response
// schema. Profiles written before roles existed report the legacy
// default "user".
func ProfileToResponse(profile *entity.UserProfile) *ProfileResponse {
	role := profile.Role
	if role == "" {
		role = "user"
	}

	return &ProfileResponse{
		UID:       profile.UID,
		Email:     profile.Email,
		Name:      profile.Name,
		Role:      role,
		Phone:     profile.Phone,
		Address:   profile.Address,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
