package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

// SnapshotCache bounds external weather call volume. Get returns (nil, nil)
// when no fresh entry exists for the city; staleness is the cache's concern.
type SnapshotCache interface {
	Get(ctx context.Context, city string) (*domain.WeatherSnapshot, error)
	Put(ctx context.Context, city string, snap *domain.WeatherSnapshot) error
}
