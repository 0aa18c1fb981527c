package usecase

import "errors"

// Error kinds surfaced by the auth flow. Handlers map these to HTTP
// statuses with errors.Is; wrapped detail is diagnostic only.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRegistrationFailed = errors.New("failed to register user")
	ErrUpdateFailed       = errors.New("failed to update user profile")
	ErrNotFound           = errors.New("user not found")
)
