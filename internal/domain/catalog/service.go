package catalog

import (
	"context"
	"time"
)

type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
}

// NewService builds a catalog service. A nil cache or non-positive ttl disables caching.
func NewService(repo Repository, cache Cache, ttl time.Duration) *Service {
	if cache == nil || ttl <= 0 {
		cache = noopCache{}
	}
	return &Service{repo: repo, cache: cache, ttl: ttl}
}

func (s *Service) List(ctx context.Context, kind Kind) ([]Item, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	if items, ok := s.cache.Get(ctx, kind); ok {
		return items, nil
	}

	items, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}

	s.cache.Set(ctx, kind, items, s.ttl)
	return items, nil
}

func (s *Service) Get(ctx context.Context, kind Kind, id int64) (*Item, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	if id <= 0 {
		return nil, ErrItemNotFound
	}
	return s.repo.Get(ctx, kind, id)
}
