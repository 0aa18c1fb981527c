package identity

import "context"

// Account is the identity provider's view of a user.
type Account struct {
	UID         string
	Email       string
	DisplayName string
}

// Claims are the privilege attributes attached to an identity. They end
// up embedded in every session token issued after assignment.
type Claims struct {
	Admin bool
}

// Provider wraps the external authentication service. All durable
// credential state lives on the provider side; this package only adapts
// its operations.
type Provider interface {
	// CreateAccount registers new credentials and returns the assigned uid.
	CreateAccount(ctx context.Context, email, password string) (*Account, error)

	// SignIn verifies credentials. Every authentication failure, including
	// an unknown email, is reported as ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*Account, error)

	// IssueToken mints an opaque session token for the uid.
	IssueToken(ctx context.Context, uid string) (string, error)

	// VerifyToken resolves a session token back to its uid.
	VerifyToken(ctx context.Context, token string) (string, error)

	// SetPrivilegeClaims attaches claims to the identity. Re-asserting
	// claims already present is a no-op.
	SetPrivilegeClaims(ctx context.Context, uid string, claims Claims) error

	// UpdateDisplayName changes the display name kept by the provider.
	UpdateDisplayName(ctx context.Context, uid, name string) error
}
