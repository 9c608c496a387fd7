package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"stylecloset-service/internal/adapters/places"
	"stylecloset-service/internal/domain"
)

// memGeocodeCache is a map-backed GeocodeCache with injectable errors.
type memGeocodeCache struct {
	mu      sync.Mutex
	entries map[string]domain.Coordinates
	getErr  error
	putErr  error
	gets    int
	puts    int
}

func newMemGeocodeCache() *memGeocodeCache {
	return &memGeocodeCache{entries: make(map[string]domain.Coordinates)}
}

func (c *memGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return domain.Coordinates{}, false, c.getErr
	}
	coords, ok := c.entries[address]
	return coords, ok, nil
}

func (c *memGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	if c.putErr != nil {
		return c.putErr
	}
	c.entries[address] = coords
	return nil
}

func TestResolveAddressEmptyNeverCallsGeocoder(t *testing.T) {
	geocoder := &places.MockGeocoder{}

	for _, address := range []string{"", "   ", "\t\n"} {
		_, err := ResolveAddress(context.Background(), address, geocoder, nil)
		if !domain.IsInvalidArgument(err) {
			t.Fatalf("address %q: expected InvalidArgumentError, got %v", address, err)
		}
	}

	if n := geocoder.Calls.Load(); n != 0 {
		t.Fatalf("expected 0 geocoder calls, got %d", n)
	}
}

func TestResolveAddressCacheHitSkipsGeocoder(t *testing.T) {
	geocoder := &places.MockGeocoder{Coords: domain.Coordinates{Lat: 1, Lng: 2}}
	cache := newMemGeocodeCache()
	want := domain.Coordinates{Lat: 37.7749, Lng: -122.4194}
	cache.entries["123 Market St, San Francisco"] = want

	got, err := ResolveAddress(context.Background(), "  123  Market St,   San Francisco ", geocoder, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("coords = %+v, want %+v", got, want)
	}
	if n := geocoder.Calls.Load(); n != 0 {
		t.Fatalf("expected cache hit to skip geocoder, got %d calls", n)
	}
}

func TestResolveAddressMissPopulatesCache(t *testing.T) {
	want := domain.Coordinates{Lat: 40.7128, Lng: -74.006}
	geocoder := &places.MockGeocoder{Coords: want}
	cache := newMemGeocodeCache()

	got, err := ResolveAddress(context.Background(), "350 5th Ave, New York", geocoder, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("coords = %+v, want %+v", got, want)
	}
	if cached, ok := cache.entries["350 5th Ave, New York"]; !ok || cached != want {
		t.Fatalf("expected cache write, got %+v ok=%v", cached, ok)
	}
}

func TestResolveAddressCacheErrorsAreNonFatal(t *testing.T) {
	want := domain.Coordinates{Lat: 51.5074, Lng: -0.1278}
	geocoder := &places.MockGeocoder{Coords: want}
	cache := newMemGeocodeCache()
	cache.getErr = fmt.Errorf("redis down")
	cache.putErr = fmt.Errorf("redis down")

	got, err := ResolveAddress(context.Background(), "10 Downing St, London", geocoder, cache)
	if err != nil {
		t.Fatalf("cache failure should not fail the resolve: %v", err)
	}
	if got != want {
		t.Fatalf("coords = %+v, want %+v", got, want)
	}
	if n := geocoder.Calls.Load(); n != 1 {
		t.Fatalf("expected 1 geocoder call, got %d", n)
	}
}

func TestResolveAddressNotFound(t *testing.T) {
	geocoder := &places.MockGeocoder{Err: fmt.Errorf("geocode: %w", domain.ErrNotFound)}

	_, err := ResolveAddress(context.Background(), "nowhere at all", geocoder, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
