package countries

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nkusuma/travelcatalog/internal/domain"
)

const cacheKey = "cache:countries"

// Cache stores the full country collection for a bounded time.
// Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context) ([]domain.Country, error)
	Set(ctx context.Context, list []domain.Country) error
}

// NullCache is a no-op Cache for deployments without Redis.
type NullCache struct{}

func (NullCache) Get(context.Context) ([]domain.Country, error) { return nil, nil }
func (NullCache) Set(context.Context, []domain.Country) error   { return nil }

// RedisCache stores the country collection as one JSON blob under a fixed key
// with a TTL. Reference data changes rarely, so a whole-collection entry is
// simpler than per-country keys.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs a RedisCache for the given server address.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context) ([]domain.Country, error) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var list []domain.Country
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *RedisCache) Set(ctx context.Context, list []domain.Country) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey, payload, c.ttl).Err()
}
