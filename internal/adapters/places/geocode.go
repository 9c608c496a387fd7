package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
)

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Geocode resolves a free-text address to coordinates. Upstream ranking
// is trusted as-is: the first result wins. Zero results map to
// domain.ErrNotFound.
func (c *Client) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "places.Geocode")(&err)

	if err := c.requireKey(); err != nil {
		return domain.Coordinates{}, err
	}

	params := func() url.Values {
		v := url.Values{}
		v.Set("address", address)
		return v
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, "/geocode/json", params())
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if err := statusToError(decoded.Status); err != nil {
		return domain.Coordinates{}, err
	}

	if len(decoded.Results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, domain.ErrNotFound)
	}

	loc := decoded.Results[0].Geometry.Location
	return domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
