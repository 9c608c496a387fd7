package ports

import (
	"context"
	"stylecloset-service/internal/domain"
)

// Contract for querying the external places provider.
type PlacesProvider interface {
	// SearchNearby returns places of a single type around center within
	// radiusMeters. The provider performs the radius filtering; results
	// are returned in upstream order.
	SearchNearby(ctx context.Context, center domain.Coordinates, radiusMeters int, placeType string) ([]domain.Place, error)

	// FetchDetail returns the enrichment record (phone, hours, website)
	// for a single place id.
	FetchDetail(ctx context.Context, placeID string) (*domain.PlaceDetail, error)
}

// Contract for resolving a free-text address to coordinates.
type Geocoder interface {
	// Geocode returns the location of the first upstream result.
	// Upstream ranking is trusted as-is.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
