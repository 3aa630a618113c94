package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ExpiringCache is a cache that can drop entries past their freshness window.
type ExpiringCache interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// CacheJanitor periodically purges stale weather snapshots from a store-backed
// cache. Redis-backed caches expire on their own and don't need one.
type CacheJanitor struct {
	cache    ExpiringCache
	cron     *cron.Cron
	interval time.Duration
	logger   *zap.Logger
}

func NewCacheJanitor(cache ExpiringCache, interval time.Duration, logger *zap.Logger) *CacheJanitor {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	j := &CacheJanitor{
		cache:    cache,
		cron:     cron.New(cron.WithSeconds()),
		interval: interval,
		logger:   logger,
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, _ = j.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		if err := j.Sweep(ctx); err != nil {
			j.logger.Error("cache sweep failed", zap.Error(err))
		}
	})

	return j
}

// Start launches the cron scheduler.
func (j *CacheJanitor) Start() {
	if j == nil || j.cron == nil {
		return
	}
	j.cron.Start()
	j.logger.Info("cache janitor started", zap.Duration("interval", j.interval))
}

// Stop gracefully stops the scheduler.
func (j *CacheJanitor) Stop(ctx context.Context) {
	if j == nil || j.cron == nil {
		return
	}
	stopCtx := j.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	j.logger.Info("cache janitor stopped")
}

// Sweep purges expired entries once, synchronously.
func (j *CacheJanitor) Sweep(ctx context.Context) error {
	if j == nil || j.cache == nil {
		return nil
	}
	removed, err := j.cache.PurgeExpired(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		j.logger.Debug("purged stale weather snapshots", zap.Int("removed", removed))
	}
	return nil
}
