package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=customer admin"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries a partial profile. Absent fields stay
// untouched.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=255"`
}
