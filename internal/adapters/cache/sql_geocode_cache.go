package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"stylecloset-service/internal/domain"
)

// SQLGeocodeCache is a Postgres-backed cache mapping normalized address
// strings to coordinates. Address keys are expected to be consistent
// (whitespace-collapsed) by the caller.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Get fetches cached coordinates for an address.
func (s *SQLGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, nil
	}

	q := `
	SELECT lat, lng
	FROM geocode_cache
	WHERE address = $1;
	`

	var lat, lng float64
	err := s.DB.QueryRowContext(ctx, q, address).Scan(&lat, &lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lng: lng}, true, nil
}

// Put stores an address -> coordinates mapping, replacing any previous
// entry for the address.
func (s *SQLGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("insert geocode cache: empty address key")
	}

	q := `
	INSERT INTO geocode_cache (address, lat, lng)
	VALUES ($1, $2, $3)
	ON CONFLICT (address) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`

	if _, err := s.DB.ExecContext(ctx, q, address, coords.Lat, coords.Lng); err != nil {
		return fmt.Errorf("insert geocode cache addr=%q: %w", address, err)
	}

	return nil
}
