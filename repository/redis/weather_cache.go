package redis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type snapshotCache struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewSnapshotCache creates a Redis-backed weather snapshot cache. The key TTL
// is the freshness window, so expiry is enforced by Redis itself.
func NewSnapshotCache(client *redislib.Client, ttl time.Duration) repository.SnapshotCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &snapshotCache{
		client: client,
		prefix: "weather:",
		ttl:    ttl,
	}
}

func (c *snapshotCache) Get(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	result, err := c.client.Get(ctx, c.key(city)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, nil
		}
		return nil, err
	}

	var snap domain.WeatherSnapshot
	if err := json.Unmarshal([]byte(result), &snap); err != nil {
		return nil, nil
	}
	return &snap, nil
}

func (c *snapshotCache) Put(ctx context.Context, city string, snap *domain.WeatherSnapshot) error {
	if snap == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(city), payload, c.ttl).Err()
}

func (c *snapshotCache) key(city string) string {
	return c.prefix + strings.ToLower(strings.TrimSpace(city))
}
