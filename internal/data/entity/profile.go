package entity

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// UserProfile is the document stored per user, keyed by the uid issued
// by the identity provider.
type UserProfile struct {
	UID       string    `db:"uid"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	Role      Role      `db:"role"`
	Phone     *string   `db:"phone"`
	Address   *string   `db:"address"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ProfilePatch carries the mutable fields of a profile. Nil fields are
// left untouched by a merge update.
type ProfilePatch struct {
	Name    *string
	Phone   *string
	Address *string
}
