package identity

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of session tokens issued by this service.
// The sub claim carries the provider-issued uid.
type SessionClaims struct {
	Admin bool `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

func signSessionToken(secret []byte, uid string, admin bool, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseSessionToken(secret []byte, tokenStr string) (*SessionClaims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := t.Claims.(*SessionClaims)
	if !ok || !t.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
