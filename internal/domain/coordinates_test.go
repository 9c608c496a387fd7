package domain

import (
	"math"
	"testing"
)

func TestCoordinatesValidate(t *testing.T) {
	cases := []struct {
		name    string
		coords  Coordinates
		wantErr bool
	}{
		{"valid", Coordinates{Lat: 37.7749, Lng: -122.4194}, false},
		{"lat upper bound", Coordinates{Lat: 90, Lng: 0}, false},
		{"lat lower bound", Coordinates{Lat: -90, Lng: 0}, false},
		{"lng upper bound", Coordinates{Lat: 0, Lng: 180}, false},
		{"lng lower bound", Coordinates{Lat: 0, Lng: -180}, false},
		{"lat too high", Coordinates{Lat: 90.01, Lng: 0}, true},
		{"lat too low", Coordinates{Lat: -90.01, Lng: 0}, true},
		{"lng too high", Coordinates{Lat: 0, Lng: 180.01}, true},
		{"lng too low", Coordinates{Lat: 0, Lng: -180.01}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.coords.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %+v", tc.coords)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %+v: %v", tc.coords, err)
			}
			if tc.wantErr && !IsInvalidArgument(err) {
				t.Fatalf("expected InvalidArgumentError, got %v", err)
			}
		})
	}
}

func TestDistanceKm(t *testing.T) {
	sf := Coordinates{Lat: 37.7749, Lng: -122.4194}
	la := Coordinates{Lat: 34.0522, Lng: -118.2437}

	// SF to LA is about 559 km great-circle.
	got := sf.DistanceKm(la)
	if math.Abs(got-559) > 2 {
		t.Fatalf("SF-LA distance = %f km, want ~559", got)
	}

	if d := sf.DistanceKm(sf); d != 0 {
		t.Fatalf("zero distance = %f, want 0", d)
	}

	// Symmetric.
	if a, b := sf.DistanceKm(la), la.DistanceKm(sf); math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", a, b)
	}
}

func TestFormatMiles(t *testing.T) {
	cases := []struct {
		km   float64
		want string
	}{
		{0, "0.0 miles"},
		{1, "0.6 miles"},
		{1.609344, "1.0 miles"},
		{5, "3.1 miles"},
		{10, "6.2 miles"},
	}

	for _, tc := range cases {
		if got := FormatMiles(tc.km); got != tc.want {
			t.Fatalf("FormatMiles(%v) = %q, want %q", tc.km, got, tc.want)
		}
	}
}

func TestPlaceDistanceMiles(t *testing.T) {
	p := Place{DistanceKm: 2.1}
	if got := p.DistanceMiles(); got != "1.3 miles" {
		t.Fatalf("DistanceMiles = %q, want %q", got, "1.3 miles")
	}
}
