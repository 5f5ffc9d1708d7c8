package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReturnsDisplayName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "-6.2", r.URL.Query().Get("lat"))
		assert.Equal(t, "106.8", r.URL.Query().Get("lon"))
		assert.Equal(t, "attendance-backend-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name": "Jalan Sudirman, Jakarta, Indonesia"}`))
	}))
	defer server.Close()

	resolver := NewNominatim(server.URL, "attendance-backend-test", 2*time.Second)

	address, err := resolver.Resolve(context.Background(), -6.2, 106.8)
	require.NoError(t, err)
	assert.Equal(t, "Jalan Sudirman, Jakarta, Indonesia", address)
}

func TestResolveFailsOnUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	resolver := NewNominatim(server.URL, "attendance-backend-test", 2*time.Second)

	_, err := resolver.Resolve(context.Background(), -6.2, 106.8)
	assert.Error(t, err)
}

func TestResolveFailsOnEmptyDisplayName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer server.Close()

	resolver := NewNominatim(server.URL, "attendance-backend-test", 2*time.Second)

	_, err := resolver.Resolve(context.Background(), -6.2, 106.8)
	assert.Error(t, err)
}

func TestFallbackAddressFormat(t *testing.T) {
	assert.Equal(t, "Lat: 12.34, Long: 56.78", FallbackAddress(12.34, 56.78))
}
