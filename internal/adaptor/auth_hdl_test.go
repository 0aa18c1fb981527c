package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registerResp *response.AuthResponse
	registerErr  error
	loginResp    *response.AuthResponse
	loginErr     error
	profileResp  *response.ProfileResponse
	profileErr   error
	updateErr    error
}

func (s *stubAuthService) Register(context.Context, *request.RegisterRequest) (*response.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(context.Context, *request.LoginRequest) (*response.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) GetProfile(context.Context, string) (*response.ProfileResponse, error) {
	return s.profileResp, s.profileErr
}

func (s *stubAuthService) UpdateProfile(context.Context, string, *request.UpdateProfileRequest) error {
	return s.updateErr
}

func newTestHandler(svc usecase.AuthService) *AuthHandler {
	return NewAuthHandler(svc, zap.NewNop())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestRegisterHandlerCreated(t *testing.T) {
	handler := newTestHandler(&stubAuthService{
		registerResp: &response.AuthResponse{
			User: response.UserResponse{
				UID:   "uid-1",
				Email: "a@x.com",
				Name:  "Ada",
				Role:  entity.RoleCustomer,
			},
			Token: "tok",
		},
	})

	body := `{"email":"a@x.com","password":"Secret123","name":"Ada"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
	assert.Equal(t, "User registered successfully", envelope.Message)
}

func TestRegisterHandlerBadBody(t *testing.T) {
	handler := newTestHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandlerValidationError(t *testing.T) {
	handler := newTestHandler(&stubAuthService{
		registerErr: usecase.ErrValidation,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Status)
}

func TestRegisterHandlerAdapterFailure(t *testing.T) {
	handler := newTestHandler(&stubAuthService{
		registerErr: usecase.ErrRegistrationFailed,
	})

	body := `{"email":"a@x.com","password":"Secret123","name":"Ada"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoginHandlerRejectionsLookIdentical(t *testing.T) {
	// The service collapses every login failure into one error; the HTTP
	// layer must keep the responses byte-for-byte identical.
	handler := newTestHandler(&stubAuthService{
		loginErr: usecase.ErrInvalidCredentials,
	})

	run := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	wrongPassword := run(`{"email":"known@x.com","password":"bad"}`)
	unknownEmail := run(`{"email":"nobody@x.com","password":"Secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginHandlerSuccess(t *testing.T) {
	handler := newTestHandler(&stubAuthService{
		loginResp: &response.AuthResponse{
			User:  response.UserResponse{UID: "uid-1", Email: "a@x.com", Name: "Ada", Role: entity.RoleCustomer},
			Token: "tok",
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@x.com","password":"Secret123"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
	assert.Equal(t, "Login successful", envelope.Message)
}

func TestGetProfileHandlerRequiresIdentity(t *testing.T) {
	handler := newTestHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()

	handler.GetProfile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfileHandlerNotFound(t *testing.T) {
	handler := newTestHandler(&stubAuthService{
		profileErr: usecase.ErrNotFound,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(utils.SetUIDContext(req.Context(), "uid-1"))
	rec := httptest.NewRecorder()

	handler.GetProfile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfileHandlerSuccess(t *testing.T) {
	handler := newTestHandler(&stubAuthService{
		profileResp: &response.ProfileResponse{
			UID:   "uid-1",
			Email: "a@x.com",
			Name:  "Ada",
			Role:  entity.RoleCustomer,
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(utils.SetUIDContext(req.Context(), "uid-1"))
	rec := httptest.NewRecorder()

	handler.GetProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfileHandlerSuccess(t *testing.T) {
	handler := newTestHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader(`{"phone":"555-0100"}`))
	req = req.WithContext(utils.SetUIDContext(req.Context(), "uid-1"))
	rec := httptest.NewRecorder()

	handler.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Profile updated successfully", envelope.Message)
}

func TestUpdateProfileHandlerFailure(t *testing.T) {
	handler := newTestHandler(&stubAuthService{
		updateErr: usecase.ErrUpdateFailed,
	})

	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader(`{"phone":"555-0100"}`))
	req = req.WithContext(utils.SetUIDContext(req.Context(), "uid-1"))
	rec := httptest.NewRecorder()

	handler.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
