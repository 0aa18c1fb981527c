package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	handler := NewSystemHandler("srv-1", "ecommerce-api")

	rec := httptest.NewRecorder()
	handler.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestWelcomeNamesServer(t *testing.T) {
	handler := NewSystemHandler("srv-1", "ecommerce-api")

	rec := httptest.NewRecorder()
	handler.Welcome(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "srv-1")
}

func TestServerInfoShape(t *testing.T) {
	handler := NewSystemHandler("srv-1", "ecommerce-api")

	rec := httptest.NewRecorder()
	handler.ServerInfo(rec, httptest.NewRequest(http.MethodGet, "/server-info", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status bool `json:"status"`
		Data   struct {
			ServerID string  `json:"serverId"`
			Platform string  `json:"platform"`
			Uptime   float64 `json:"uptime"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.True(t, envelope.Status)
	assert.Equal(t, "srv-1", envelope.Data.ServerID)
	assert.NotEmpty(t, envelope.Data.Platform)
}
