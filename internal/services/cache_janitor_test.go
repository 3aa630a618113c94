package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	sweeps  int
	removed int
	err     error
}

func (f *fakeCache) PurgeExpired(_ context.Context) (int, error) {
	f.sweeps++
	return f.removed, f.err
}

func TestCacheJanitor_Sweep(t *testing.T) {
	cache := &fakeCache{removed: 2}
	j := NewCacheJanitor(cache, time.Minute, nil)

	require.NoError(t, j.Sweep(context.Background()))
	require.Equal(t, 1, cache.sweeps)

	cache.err = errors.New("store closed")
	require.Error(t, j.Sweep(context.Background()))
}

func TestCacheJanitor_NilCacheIsNoOp(t *testing.T) {
	j := NewCacheJanitor(nil, time.Minute, nil)
	require.NoError(t, j.Sweep(context.Background()))
}
