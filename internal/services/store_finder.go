package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"stylecloset-service/internal/domain"
	"stylecloset-service/internal/platform/obs"
	"stylecloset-service/internal/ports"
)

// DefaultRadiusMeters is applied by the HTTP layer when a request omits
// the radius. The service itself rejects non-positive radii.
const DefaultRadiusMeters = 5000

// Cap on concurrent detail fetches so a large result page does not open
// one connection per place at once.
const detailFetchLimit = 8

// NearbyQuery describes a single nearby-store search.
type NearbyQuery struct {
	Center         domain.Coordinates
	RadiusMeters   int
	Types          []string
	IncludeDetails bool
}

func (q NearbyQuery) validate() error {
	if err := q.Center.Validate(); err != nil {
		return err
	}
	if q.RadiusMeters <= 0 {
		return &domain.InvalidArgumentError{Field: "radius", Reason: "must be positive"}
	}
	if len(q.Types) == 0 {
		return &domain.InvalidArgumentError{Field: "types", Reason: "must be non-empty"}
	}
	for _, t := range q.Types {
		if t == "" {
			return &domain.InvalidArgumentError{Field: "types", Reason: "must not contain empty type strings"}
		}
	}
	return nil
}

type typeSearchResult struct {
	places []domain.Place
	err    error
}

// FindNearbyStores runs one nearby search per requested place type
// concurrently, merges the results, and returns a flat list sorted by
// great-circle distance from the query center.
//
// Partial failures degrade gracefully: a failed type search contributes
// nothing, and a failed detail fetch leaves that place's Detail absent.
// The operation fails as a whole only when the provider credential is
// rejected, when every type search fails, or when ctx is cancelled.
func FindNearbyStores(
	ctx context.Context,
	q NearbyQuery,
	provider ports.PlacesProvider,
) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "stores.FindNearby")(&err)

	if err := q.validate(); err != nil {
		return nil, err
	}

	// Fan out one search per type. Every outcome is retained so a
	// single failure cannot abort the join.
	results := make([]typeSearchResult, len(q.Types))

	var wg sync.WaitGroup
	for i, t := range q.Types {
		wg.Add(1)
		go func(i int, placeType string) {
			defer wg.Done()
			places, err := provider.SearchNearby(ctx, q.Center, q.RadiusMeters, placeType)
			results[i] = typeSearchResult{places: places, err: err}
		}(i, t)
	}
	wg.Wait()

	// Caller cancellation is all-or-nothing: no partial results.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Merge in the caller's type order so first-seen de-duplication is
	// deterministic for identical inputs.
	merged := make([]domain.Place, 0)
	seen := make(map[string]struct{})
	failed := 0
	var firstErr error

	for i, res := range results {
		if res.err != nil {
			if errors.Is(res.err, domain.ErrConfiguration) {
				return nil, fmt.Errorf("nearby search type=%q: %w", q.Types[i], res.err)
			}
			failed++
			if firstErr == nil {
				firstErr = res.err
			}
			log.WithFields(log.Fields{"type": q.Types[i]}).
				WithError(res.err).Warn("nearby search failed for type")
			continue
		}

		for _, p := range res.places {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			merged = append(merged, p)
		}
	}

	if failed == len(q.Types) {
		return nil, fmt.Errorf("nearby search: all %d type searches failed: %w (first: %v)",
			failed, domain.ErrUpstream, firstErr)
	}

	if q.IncludeDetails {
		fetchDetails(ctx, merged, provider)
	}

	for i := range merged {
		merged[i].DistanceKm = q.Center.DistanceKm(merged[i].Location)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].DistanceKm != merged[j].DistanceKm {
			return merged[i].DistanceKm < merged[j].DistanceKm
		}
		return merged[i].ID < merged[j].ID
	})

	return merged, nil
}

// fetchDetails enriches places in-place with a concurrent second pass.
// A failed fetch leaves that place's Detail nil and never fails the
// aggregate operation.
func fetchDetails(ctx context.Context, places []domain.Place, provider ports.PlacesProvider) {
	sem := make(chan struct{}, detailFetchLimit)
	var wg sync.WaitGroup

	for i := range places {
		wg.Add(1)
		go func(i int) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			detail, err := provider.FetchDetail(ctx, places[i].ID)
			if err != nil {
				log.WithFields(log.Fields{"place_id": places[i].ID}).
					WithError(err).Warn("place detail fetch failed")
				return
			}
			places[i].Detail = detail
		}(i)
	}
	wg.Wait()
}
