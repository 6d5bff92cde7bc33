package ipgeo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inspection-map/internal/config"
	"github.com/inspection-map/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider := NewClient(&config.GeolocationConfig{ProviderURL: server.URL, Timeout: timeout}, zap.NewNop())
	require.NotNil(t, provider)
	return provider.(*client)
}

func TestClient_Locate(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/203.0.113.7", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(lookupResponse{Status: "success", Lat: 53.9171, Lon: -122.7497})
		}, time.Second)

		pos, err := c.Locate(context.Background(), "203.0.113.7")
		require.NoError(t, err)
		assert.Equal(t, 53.9171, pos.Lat)
		assert.Equal(t, -122.7497, pos.Lng)
	})

	t.Run("forbidden maps to denied", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}, time.Second)

		_, err := c.Locate(context.Background(), "203.0.113.7")
		assert.ErrorIs(t, err, domain.ErrLocationDenied)
	})

	t.Run("server error maps to unavailable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}, time.Second)

		_, err := c.Locate(context.Background(), "203.0.113.7")
		assert.ErrorIs(t, err, domain.ErrLocationUnavailable)
	})

	t.Run("provider failure status maps to unavailable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(lookupResponse{Status: "fail", Message: "private range"})
		}, time.Second)

		_, err := c.Locate(context.Background(), "10.0.0.1")
		assert.ErrorIs(t, err, domain.ErrLocationUnavailable)
	})

	t.Run("slow provider maps to timeout", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}, 50*time.Millisecond)

		_, err := c.Locate(context.Background(), "203.0.113.7")
		assert.ErrorIs(t, err, domain.ErrLocationTimeout)
	})
}

func TestNewClient_NoProviderIsUnsupported(t *testing.T) {
	assert.Nil(t, NewClient(&config.GeolocationConfig{}, zap.NewNop()))
}
