package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-api/internal/identity"
	"ecommerce-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubProvider struct {
	uid string
	err error
}

func (p *stubProvider) CreateAccount(context.Context, string, string) (*identity.Account, error) {
	return nil, nil
}
func (p *stubProvider) SignIn(context.Context, string, string) (*identity.Account, error) {
	return nil, nil
}
func (p *stubProvider) IssueToken(context.Context, string) (string, error) { return "", nil }
func (p *stubProvider) VerifyToken(context.Context, string) (string, error) {
	return p.uid, p.err
}
func (p *stubProvider) SetPrivilegeClaims(context.Context, string, identity.Claims) error {
	return nil
}
func (p *stubProvider) UpdateDisplayName(context.Context, string, string) error { return nil }

func runAuth(t *testing.T, idp identity.Provider, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var resolvedUID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolvedUID, _ = utils.GetUIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	AuthToken(idp, zap.NewNop())(next).ServeHTTP(rec, req)
	return rec, resolvedUID
}

func TestAuthTokenResolvesUID(t *testing.T) {
	rec, uid := runAuth(t, &stubProvider{uid: "uid-1"}, "Bearer some-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", uid)
}

func TestAuthTokenMissingHeader(t *testing.T) {
	rec, _ := runAuth(t, &stubProvider{uid: "uid-1"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthTokenMalformedHeader(t *testing.T) {
	rec, _ := runAuth(t, &stubProvider{uid: "uid-1"}, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthTokenRejectedToken(t *testing.T) {
	rec, _ := runAuth(t, &stubProvider{err: identity.ErrInvalidToken}, "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
