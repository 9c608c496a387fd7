package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"stylecloset-service/internal/adapters/places"
	"stylecloset-service/internal/api/dto"
	"stylecloset-service/internal/auth"
	"stylecloset-service/internal/domain"
)

// authedRequest attaches verified claims the way the auth middleware
// would.
func authedRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	return r.WithContext(auth.WithClaims(r.Context(), &auth.Claims{UserID: "user-1"}))
}

func storePlaceAtKm(id string, center domain.Coordinates, km float64) domain.Place {
	latOffset := km / 6371.0 * 180 / math.Pi
	return domain.Place{
		ID:       id,
		Name:     "Store " + id,
		Location: domain.Coordinates{Lat: center.Lat + latOffset, Lng: center.Lng},
	}
}

func TestStoreHandlerNearby(t *testing.T) {
	center := domain.Coordinates{Lat: 37.7749, Lng: -122.4194}
	provider := &places.MockProvider{
		ByType: map[string][]domain.Place{
			"clothing_store": {
				storePlaceAtKm("p-far", center, 4.9),
				storePlaceAtKm("p-near", center, 0.5),
			},
		},
	}
	h := &StoreHandler{Provider: provider}

	req := authedRequest(http.MethodGet, "/stores/nearby?lat=37.7749&lng=-122.4194")
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.ListPlacesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Places) != 2 {
		t.Fatalf("expected 2 places, got %d", len(res.Places))
	}
	if res.Places[0].ID != "p-near" || res.Places[1].ID != "p-far" {
		t.Fatalf("not sorted by distance: %q, %q", res.Places[0].ID, res.Places[1].ID)
	}
	if res.Places[0].Distance != "0.3 miles" {
		t.Fatalf("distance = %q, want %q", res.Places[0].Distance, "0.3 miles")
	}
}

func TestStoreHandlerNearbyByAddress(t *testing.T) {
	center := domain.Coordinates{Lat: 40.7128, Lng: -74.006}
	provider := &places.MockProvider{
		ByType: map[string][]domain.Place{
			"clothing_store": {storePlaceAtKm("p-1", center, 1.0)},
		},
	}
	geocoder := &places.MockGeocoder{Coords: center}
	h := &StoreHandler{Provider: provider, Geocoder: geocoder}

	req := authedRequest(http.MethodGet, "/stores/nearby?address=350+5th+Ave")
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if n := geocoder.Calls.Load(); n != 1 {
		t.Fatalf("expected 1 geocode call, got %d", n)
	}
}

func TestStoreHandlerNearbyValidation(t *testing.T) {
	h := &StoreHandler{Provider: &places.MockProvider{}}

	cases := []struct {
		name   string
		target string
		want   int
	}{
		{"no location", "/stores/nearby", http.StatusBadRequest},
		{"bad lat", "/stores/nearby?lat=abc&lng=0", http.StatusBadRequest},
		{"lat out of range", "/stores/nearby?lat=91&lng=0", http.StatusBadRequest},
		{"bad radius", "/stores/nearby?lat=0&lng=0&radius=abc", http.StatusBadRequest},
		{"zero radius", "/stores/nearby?lat=0&lng=0&radius=0", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Nearby(rec, authedRequest(http.MethodGet, tc.target))
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestStoreHandlerNearbyUpstreamDown(t *testing.T) {
	provider := &places.MockProvider{
		TypeErrs: map[string]error{
			"clothing_store": domain.ErrUpstream,
		},
	}
	h := &StoreHandler{Provider: provider}

	rec := httptest.NewRecorder()
	h.Nearby(rec, authedRequest(http.MethodGet, "/stores/nearby?lat=0&lng=0"))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502: %s", rec.Code, rec.Body.String())
	}
}

func TestStoreHandlerNearbyConfigurationHidden(t *testing.T) {
	provider := &places.MockProvider{
		TypeErrs: map[string]error{
			"clothing_store": domain.ErrConfiguration,
		},
	}
	h := &StoreHandler{Provider: provider}

	rec := httptest.NewRecorder()
	h.Nearby(rec, authedRequest(http.MethodGet, "/stores/nearby?lat=0&lng=0"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %s", rec.Code, rec.Body.String())
	}

	var res map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res["error"] != "service misconfigured" {
		t.Fatalf("credential details must not leak: %q", res["error"])
	}
}

func TestStoreHandlerNearbyMethodNotAllowed(t *testing.T) {
	h := &StoreHandler{Provider: &places.MockProvider{}}

	rec := httptest.NewRecorder()
	h.Nearby(rec, authedRequest(http.MethodPost, "/stores/nearby?lat=0&lng=0"))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
