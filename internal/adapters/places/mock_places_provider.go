package places

import (
	"context"
	"fmt"
	"sync/atomic"

	"stylecloset-service/internal/domain"
)

// MockProvider is an in-memory PlacesProvider for tests.
type MockProvider struct {
	ByType     map[string][]domain.Place
	TypeErrs   map[string]error
	Details    map[string]*domain.PlaceDetail
	DetailErrs map[string]error

	SearchCalls atomic.Int64
	DetailCalls atomic.Int64
}

func (m *MockProvider) SearchNearby(
	ctx context.Context,
	center domain.Coordinates,
	radiusMeters int,
	placeType string,
) ([]domain.Place, error) {
	m.SearchCalls.Add(1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.TypeErrs[placeType]; ok {
		return nil, err
	}
	return m.ByType[placeType], nil
}

func (m *MockProvider) FetchDetail(ctx context.Context, placeID string) (*domain.PlaceDetail, error) {
	m.DetailCalls.Add(1)

	if err, ok := m.DetailErrs[placeID]; ok {
		return nil, err
	}
	if d, ok := m.Details[placeID]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("no detail fixture for %q", placeID)
}

// MockGeocoder is an in-memory Geocoder for tests.
type MockGeocoder struct {
	Coords domain.Coordinates
	Err    error

	Calls atomic.Int64
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	m.Calls.Add(1)

	if m.Err != nil {
		return domain.Coordinates{}, m.Err
	}
	return m.Coords, nil
}
