package catalog

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, kind Kind) ([]Item, bool)
	Set(ctx context.Context, kind Kind, items []Item, ttl time.Duration)
	Delete(ctx context.Context, kind Kind)
}

type noopCache struct{}

func (noopCache) Get(context.Context, Kind) ([]Item, bool) {
	return nil, false
}

func (noopCache) Set(context.Context, Kind, []Item, time.Duration) {}

func (noopCache) Delete(context.Context, Kind) {}
