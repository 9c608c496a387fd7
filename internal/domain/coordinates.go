package domain

import (
	"fmt"
	"math"
)

const (
	earthRadiusKm = 6371.0
	milesPerKm    = 0.621371
)

// Immutable geographic coordinates in floating-point degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the coordinates lie within the valid
// latitude/longitude ranges.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return &InvalidArgumentError{Field: "lat", Reason: fmt.Sprintf("must be within [-90, 90], got %v", c.Lat)}
	}
	if c.Lng < -180 || c.Lng > 180 {
		return &InvalidArgumentError{Field: "lng", Reason: fmt.Sprintf("must be within [-180, 180], got %v", c.Lng)}
	}
	return nil
}

// DistanceKm returns the great-circle distance to other in kilometers
// using the haversine formula on a spherical Earth.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLng := (other.Lng - c.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	cc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * cc
}

// FormatMiles renders a kilometer distance as a display string such as
// "3.1 miles", rounded to one decimal place.
func FormatMiles(km float64) string {
	return fmt.Sprintf("%.1f miles", km*milesPerKm)
}
