package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
)

type nearbyResponse struct {
	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Rating *float64 `json:"rating,omitempty"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
			Width          int    `json:"width"`
			Height         int    `json:"height"`
		} `json:"photos,omitempty"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// SearchNearby queries the nearby-search endpoint for a single place
// type. The provider enforces the radius; results are mapped as-is, in
// upstream order.
func (c *Client) SearchNearby(
	ctx context.Context,
	center domain.Coordinates,
	radiusMeters int,
	placeType string,
) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "places.SearchNearby")(&err)

	if err := c.requireKey(); err != nil {
		return nil, err
	}

	params := func() url.Values {
		v := url.Values{}
		v.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
		v.Set("radius", strconv.Itoa(radiusMeters))
		v.Set("type", placeType)
		return v
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, "/place/nearbysearch/json", params())
	})
	if err != nil {
		return nil, fmt.Errorf("nearby search: %w", err)
	}
	defer resp.Body.Close()

	var decoded nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode nearby response: %w", err)
	}

	if err := statusToError(decoded.Status); err != nil {
		if decoded.ErrorMessage != "" {
			return nil, fmt.Errorf("%w (%s)", err, decoded.ErrorMessage)
		}
		return nil, err
	}

	out := make([]domain.Place, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		photos := make([]domain.PlacePhoto, 0, len(r.Photos))
		for _, ph := range r.Photos {
			photos = append(photos, domain.PlacePhoto{
				URL:    c.PhotoURL(ph.PhotoReference, defaultPhotoMaxWidth),
				Width:  ph.Width,
				Height: ph.Height,
			})
		}

		out = append(out, domain.Place{
			ID:      r.PlaceID,
			Name:    r.Name,
			Address: r.Vicinity,
			Location: domain.Coordinates{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
			Rating: r.Rating,
			Photos: photos,
		})
	}

	return out, nil
}

// PhotoURL builds a displayable image URL for a photo reference. The
// image itself is never fetched by this client.
func (c *Client) PhotoURL(photoReference string, maxWidth int) string {
	v := url.Values{}
	v.Set("photoreference", photoReference)
	v.Set("maxwidth", strconv.Itoa(maxWidth))
	v.Set("key", c.apiKey)
	return c.baseURL + "/place/photo?" + v.Encode()
}
