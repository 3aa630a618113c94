package weather

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

// Source is the external weather provider.
type Source interface {
	Current(ctx context.Context, city string) (*domain.WeatherSnapshot, error)
	Configured() bool
}

// Enricher decorates tasks with a best-effort weather snapshot. Lookups never
// fail: any cache or provider problem degrades to "no data" (a nil snapshot).
type Enricher struct {
	source Source
	cache  repository.SnapshotCache
	logger *zap.Logger
}

func New(source Source, cache repository.SnapshotCache, logger *zap.Logger) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Lookup returns the current snapshot for city, serving from the cache while
// the entry is inside the freshness window. Without a configured provider it
// returns nil immediately.
func (e *Enricher) Lookup(ctx context.Context, city string) *domain.WeatherSnapshot {
	city = strings.TrimSpace(city)
	if e == nil || city == "" {
		return nil
	}
	if e.source == nil || !e.source.Configured() {
		return nil
	}

	if e.cache != nil {
		snap, err := e.cache.Get(ctx, city)
		if err != nil {
			e.logger.Debug("weather cache read failed", zap.String("city", city), zap.Error(err))
		} else if snap != nil {
			return snap
		}
	}

	snap, err := e.source.Current(ctx, city)
	if err != nil {
		e.logger.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		return nil
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, city, snap); err != nil {
			e.logger.Debug("weather cache write failed", zap.String("city", city), zap.Error(err))
		}
	}
	return snap
}
