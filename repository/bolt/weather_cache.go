package bolt

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/infrastructure/kvstore"
)

const weatherKeyPrefix = "weather_"

type cacheEntry struct {
	Snapshot  domain.WeatherSnapshot `json:"snapshot"`
	FetchedAt time.Time              `json:"fetched_at"`
}

// SnapshotCache stores weather snapshots in the local store under
// "weather_<lowercased-city>" keys. Entries older than the freshness window
// read as misses; PurgeExpired removes them for good.
type SnapshotCache struct {
	store *kvstore.Store
	ttl   time.Duration
	now   func() time.Time
}

// NewSnapshotCache builds a store-backed cache with the given freshness window.
func NewSnapshotCache(store *kvstore.Store, ttl time.Duration, now func() time.Time) *SnapshotCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &SnapshotCache{store: store, ttl: ttl, now: now}
}

func (c *SnapshotCache) Get(_ context.Context, city string) (*domain.WeatherSnapshot, error) {
	raw, found, err := c.store.Get(cacheKey(city))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var entry cacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, nil
	}
	if c.now().Sub(entry.FetchedAt) >= c.ttl {
		return nil, nil
	}
	snap := entry.Snapshot
	return &snap, nil
}

func (c *SnapshotCache) Put(_ context.Context, city string, snap *domain.WeatherSnapshot) error {
	if snap == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(cacheEntry{Snapshot: *snap, FetchedAt: c.now()})
	if err != nil {
		return err
	}
	return c.store.Put(cacheKey(city), string(payload))
}

// PurgeExpired deletes every cache entry older than the freshness window and
// returns how many were removed.
func (c *SnapshotCache) PurgeExpired(_ context.Context) (int, error) {
	keys, err := c.store.Keys(weatherKeyPrefix)
	if err != nil {
		return 0, err
	}
	cutoff := c.now().Add(-c.ttl)
	removed := 0
	for _, key := range keys {
		raw, found, err := c.store.Get(key)
		if err != nil || !found {
			continue
		}
		var entry cacheEntry
		stale := json.Unmarshal([]byte(raw), &entry) != nil || !entry.FetchedAt.After(cutoff)
		if !stale {
			continue
		}
		if err := c.store.Delete(key); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func cacheKey(city string) string {
	return weatherKeyPrefix + strings.ToLower(strings.TrimSpace(city))
}
