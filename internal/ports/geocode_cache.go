package ports

import (
	"context"
	"stylecloset-service/internal/domain"
)

// Port: a boundary for caching geocoded addresses. Place search results
// themselves are never cached; only address -> coordinates mappings,
// which are stable enough to reuse across requests.
type GeocodeCache interface {
	// Get returns the cached coordinates for address, with ok reporting
	// whether the address was present.
	Get(ctx context.Context, address string) (coords domain.Coordinates, ok bool, err error)

	// Put stores an address -> coordinates mapping.
	Put(ctx context.Context, address string, coords domain.Coordinates) error
}
