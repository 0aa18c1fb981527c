package identity

import "errors"

var (
	// ErrAccountExists is returned by CreateAccount when the email is taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidCredentialFormat is returned by CreateAccount for a malformed
	// email or a password the provider rejects (e.g. too weak).
	ErrInvalidCredentialFormat = errors.New("invalid credential format")

	// ErrInvalidCredentials covers every sign-in failure. Wrong password and
	// unknown email are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned by VerifyToken for expired or malformed
	// session tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrAccountNotFound is returned by admin operations targeting an
	// unknown uid.
	ErrAccountNotFound = errors.New("account not found")
)
