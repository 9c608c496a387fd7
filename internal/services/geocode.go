package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
	"stylecloset-service/internal/ports"
)

// ResolveAddress geocodes a free-text address, consulting the optional
// cache first. Cache failures are logged and treated as misses; cache
// writes are best-effort.
func ResolveAddress(
	ctx context.Context,
	address string,
	geocoder ports.Geocoder,
	cache ports.GeocodeCache,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "stores.ResolveAddress")(&err)

	// Collapse whitespace so cache keys stay consistent.
	addr := strings.Join(strings.Fields(address), " ")
	if addr == "" {
		return domain.Coordinates{}, &domain.InvalidArgumentError{
			Field: "address", Reason: "must be non-empty",
		}
	}

	if cache != nil {
		coords, ok, err := cache.Get(ctx, addr)
		if err != nil {
			log.WithError(err).Warn("geocode cache read failed")
		} else if ok {
			return coords, nil
		}
	}

	coords, err := geocoder.Geocode(ctx, addr)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", addr, err)
	}

	if cache != nil {
		if err := cache.Put(ctx, addr, coords); err != nil {
			log.WithError(err).Warn("geocode cache write failed")
		}
	}

	return coords, nil
}
