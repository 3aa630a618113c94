package bolt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
)

func TestSnapshotCache_FreshnessWindow(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cache := NewSnapshotCache(store, 10*time.Minute, func() time.Time { return current })

	snap := &domain.WeatherSnapshot{Main: "Clouds", Icon: "04d", TempC: 18.5}
	require.NoError(t, cache.Put(ctx, "Paris", snap))

	got, err := cache.Get(ctx, "paris")
	require.NoError(t, err)
	require.Equal(t, snap, got)

	current = current.Add(9 * time.Minute)
	got, err = cache.Get(ctx, "PARIS")
	require.NoError(t, err)
	require.NotNil(t, got)

	current = current.Add(2 * time.Minute)
	got, err = cache.Get(ctx, "paris")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSnapshotCache_PurgeExpiredRemovesOnlyStaleEntries(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cache := NewSnapshotCache(store, 10*time.Minute, func() time.Time { return current })

	require.NoError(t, cache.Put(ctx, "oslo", &domain.WeatherSnapshot{Main: "Snow", TempC: -2}))
	current = current.Add(15 * time.Minute)
	require.NoError(t, cache.Put(ctx, "lima", &domain.WeatherSnapshot{Main: "Clear", TempC: 24}))

	removed, err := cache.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	keys, err := store.Keys("weather_")
	require.NoError(t, err)
	require.Equal(t, []string{"weather_lima"}, keys)

	// Unrelated keys survive a purge.
	require.NoError(t, store.Put("tasks", "[]"))
	removed, err = cache.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestSnapshotCache_CorruptEntryReadsAsMiss(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	cache := NewSnapshotCache(store, 10*time.Minute, nil)
	require.NoError(t, store.Put("weather_paris", "{broken"))

	got, err := cache.Get(ctx, "paris")
	require.NoError(t, err)
	require.Nil(t, got)
}
