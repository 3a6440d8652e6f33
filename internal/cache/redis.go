package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/journeys/config"
	"github.com/Domenick1991/journeys/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the flight-event snapshot under a single key. The snapshot
// is replaced wholesale with one SET, so readers see either the previous or
// the new snapshot in full, never a partial one.
type RedisCache struct {
	client *redis.Client
	key    string
}

func NewRedisCache(cfg config.RedisConfig, key string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		key:    key,
	}
}

// GetSnapshot returns the cached flight events, or nil with no error when the
// snapshot has not been written yet.
func (c *RedisCache) GetSnapshot(ctx context.Context) ([]domain.FlightEvent, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	var events []domain.FlightEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot: %v", domain.ErrMalformedData, err)
	}
	return events, nil
}

// SetSnapshot overwrites the snapshot with the given events. No TTL: the
// refresher replaces the value on its own schedule.
func (c *RedisCache) SetSnapshot(ctx context.Context, events []domain.FlightEvent) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}
