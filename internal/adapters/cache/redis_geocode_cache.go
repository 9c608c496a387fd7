package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stylecloset-service/internal/domain"
)

const geocodeKeyPrefix = "geocode:"

// RedisGeocodeCache is a Redis-backed geocode cache with per-entry TTL.
// It is a drop-in alternative to SQLGeocodeCache for deployments that
// already run Redis next to the API.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisGeocodeCache wraps an existing Redis client. ttl <= 0 disables
// expiry.
func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

// Get fetches cached coordinates for an address.
func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if r.client == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinates{}, false, nil
	}

	raw, err := r.client.Get(ctx, geocodeKeyPrefix+address).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: %w", err)
	}

	var coords domain.Coordinates
	if err := json.Unmarshal([]byte(raw), &coords); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: decode entry: %w", err)
	}

	return coords, true, nil
}

// Put stores an address -> coordinates mapping.
func (r *RedisGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if r.client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("insert geocode cache: empty address key")
	}

	raw, err := json.Marshal(coords)
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode entry: %w", err)
	}

	if err := r.client.Set(ctx, geocodeKeyPrefix+address, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache addr=%q: %w", address, err)
	}

	return nil
}
