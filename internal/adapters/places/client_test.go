package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stylecloset-service/internal/domain"
)

// testClient points a Client at an httptest server.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", 5*time.Second)
	c.baseURL = srv.URL
	return c
}

func TestSearchNearbyMapsResults(t *testing.T) {
	body := `{
		"status": "OK",
		"results": [
			{
				"place_id": "pid-1",
				"name": "Thread Theory",
				"vicinity": "123 Market St",
				"geometry": {"location": {"lat": 37.78, "lng": -122.41}},
				"rating": 4.5,
				"photos": [{"photo_reference": "ref-1", "width": 800, "height": 600}]
			},
			{
				"place_id": "pid-2",
				"name": "No Frills Apparel",
				"vicinity": "456 Mission St",
				"geometry": {"location": {"lat": 37.79, "lng": -122.4}}
			}
		]
	}`

	var gotQuery atomic.Value
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query().Encode())
		w.Write([]byte(body))
	}))

	center := domain.Coordinates{Lat: 37.7749, Lng: -122.4194}
	got, err := client.SearchNearby(context.Background(), center, 1500, "clothing_store")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 places, got %d", len(got))
	}
	if got[0].ID != "pid-1" || got[0].Name != "Thread Theory" || got[0].Address != "123 Market St" {
		t.Fatalf("unexpected first place: %+v", got[0])
	}
	if got[0].Rating == nil || *got[0].Rating != 4.5 {
		t.Fatalf("rating not mapped: %+v", got[0].Rating)
	}
	if len(got[0].Photos) != 1 || got[0].Photos[0].Width != 800 {
		t.Fatalf("photos not mapped: %+v", got[0].Photos)
	}
	if got[1].Rating != nil {
		t.Fatalf("missing rating should stay nil, got %v", *got[1].Rating)
	}
	if got[1].Location.Lat != 37.79 {
		t.Fatalf("location not mapped: %+v", got[1].Location)
	}
}

func TestSearchNearbyRequestDenied(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	}))

	_, err := client.SearchNearby(context.Background(), domain.Coordinates{}, 1500, "clothing_store")
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestSearchNearbyZeroResults(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))

	got, err := client.SearchNearby(context.Background(), domain.Coordinates{}, 1500, "clothing_store")
	if err != nil {
		t.Fatalf("zero results should not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %d places", len(got))
	}
}

func TestSearchNearbyEmptyKeyNeverCallsAPI(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewClient("   ", time.Second)
	c.baseURL = srv.URL

	_, err := c.SearchNearby(context.Background(), domain.Coordinates{}, 1500, "clothing_store")
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("missing key must fail before any request, got %d calls", calls.Load())
	}
}

func TestSearchNearbyRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int64
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status": "OK", "results": []}`))
	}))

	_, err := client.SearchNearby(context.Background(), domain.Coordinates{}, 1500, "clothing_store")
	if err != nil {
		t.Fatalf("expected retries to recover: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestSearchNearbyDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int64
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := client.SearchNearby(context.Background(), domain.Coordinates{}, 1500, "clothing_store")
	if err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("4xx must not be retried, got %d attempts", calls.Load())
	}
}

func TestFetchDetailMapsResult(t *testing.T) {
	body := `{
		"status": "OK",
		"result": {
			"formatted_phone_number": "+1 415 555 0101",
			"website": "https://threadtheory.example.com",
			"formatted_address": "123 Market St, San Francisco, CA",
			"opening_hours": {"weekday_text": ["Monday: 10AM-8PM", "Tuesday: 10AM-8PM"]}
		}
	}`

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("place_id"); got != "pid-1" {
			t.Errorf("place_id = %q, want pid-1", got)
		}
		w.Write([]byte(body))
	}))

	got, err := client.FetchDetail(context.Background(), "pid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Phone != "+1 415 555 0101" || got.Website != "https://threadtheory.example.com" {
		t.Fatalf("unexpected detail: %+v", got)
	}
	if len(got.OpeningHours) != 2 {
		t.Fatalf("opening hours not mapped: %v", got.OpeningHours)
	}
}

func TestGeocode(t *testing.T) {
	body := `{
		"status": "OK",
		"results": [
			{"geometry": {"location": {"lat": 40.7484, "lng": -73.9857}}},
			{"geometry": {"location": {"lat": 1.0, "lng": 2.0}}}
		]
	}`

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "350 5th Ave" {
			t.Errorf("address = %q, want 350 5th Ave", got)
		}
		w.Write([]byte(body))
	}))

	got, err := client.Geocode(context.Background(), "350 5th Ave")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First result wins.
	want := domain.Coordinates{Lat: 40.7484, Lng: -73.9857}
	if got != want {
		t.Fatalf("coords = %+v, want %+v", got, want)
	}
}

func TestGeocodeZeroResultsIsNotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))

	_, err := client.Geocode(context.Background(), "nowhere at all")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPhotoURL(t *testing.T) {
	c := NewClient("test-key", time.Second)
	c.baseURL = "https://maps.example.com/api"

	got := c.PhotoURL("ref-abc", 400)
	want := "https://maps.example.com/api/place/photo?key=test-key&maxwidth=400&photoreference=ref-abc"
	if got != want {
		t.Fatalf("PhotoURL = %q, want %q", got, want)
	}
}
