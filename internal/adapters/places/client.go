package places

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"stylecloset-service/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Default width used when building photo URLs from photo references.
const defaultPhotoMaxWidth = 400

// Client implements PlacesProvider and Geocoder against a Google-style
// maps/places REST API.
//
// It coordinates:
//   - Nearby search per place type
//   - Place detail enrichment
//   - Free-text geocoding
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use. The API key is injected at
// construction and validated at call time, so a missing credential
// surfaces as domain.ErrConfiguration on the first call rather than a
// startup crash.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

// NewClient builds a places client. timeout bounds every outbound call;
// zero selects the default.
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api",
	}
}

func (c *Client) requireKey() error {
	if strings.TrimSpace(c.apiKey) == "" {
		return fmt.Errorf("places client: api key is empty: %w", domain.ErrConfiguration)
	}
	return nil
}

// statusToError maps the provider's body-level status field to the
// domain error taxonomy. ZERO_RESULTS is not an error here; callers that
// require results handle it themselves.
func statusToError(status string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "REQUEST_DENIED":
		return fmt.Errorf("places api: request denied: %w", domain.ErrConfiguration)
	default:
		return fmt.Errorf("places api: status %s: %w", status, domain.ErrUpstream)
	}
}
