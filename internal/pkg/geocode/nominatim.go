package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Resolver turns coordinates into a human-readable address. Best-effort:
// callers must tolerate errors and fall back to FallbackAddress.
type Resolver interface {
	Resolve(ctx context.Context, latitude, longitude float64) (string, error)
}

// FallbackAddress is the literal stored when address resolution fails. It is
// never left blank.
func FallbackAddress(latitude, longitude float64) string {
	return fmt.Sprintf("Lat: %v, Long: %v", latitude, longitude)
}

type nominatimResolver struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatim returns a Resolver backed by the OpenStreetMap Nominatim
// reverse endpoint. The timeout bounds the whole lookup so a slow upstream
// never stalls a check-in.
func NewNominatim(baseURL, userAgent string, timeout time.Duration) Resolver {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &nominatimResolver{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
}

func (r *nominatimResolver) Resolve(ctx context.Context, latitude, longitude float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		r.baseURL,
		url.QueryEscape(fmt.Sprintf("%v", latitude)),
		url.QueryEscape(fmt.Sprintf("%v", longitude)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding returned status %d", resp.StatusCode)
	}

	var parsed nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocoding response: %w", err)
	}

	if parsed.DisplayName == "" {
		return "", fmt.Errorf("reverse geocoding returned no display name")
	}

	return parsed.DisplayName, nil
}
