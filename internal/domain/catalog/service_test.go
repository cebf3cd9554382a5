package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeCatalogRepo struct {
	items     map[Kind][]Item
	listCalls int
}

func (r *fakeCatalogRepo) List(ctx context.Context, kind Kind) ([]Item, error) {
	r.listCalls++
	return r.items[kind], nil
}

func (r *fakeCatalogRepo) Get(ctx context.Context, kind Kind, id int64) (*Item, error) {
	for _, item := range r.items[kind] {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, ErrItemNotFound
}

type mapCache struct {
	items map[Kind][]Item
}

func (c *mapCache) Get(ctx context.Context, kind Kind) ([]Item, bool) {
	items, ok := c.items[kind]
	return items, ok
}

func (c *mapCache) Set(ctx context.Context, kind Kind, items []Item, ttl time.Duration) {
	c.items[kind] = items
}

func (c *mapCache) Delete(ctx context.Context, kind Kind) {
	delete(c.items, kind)
}

func strPtr(value string) *string {
	return &value
}

func newRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: map[Kind][]Item{
		KindDietary:  {{ID: 1, Name: "Vegan", LogoPath: strPtr("vegan.png")}, {ID: 2, Name: "Keto"}},
		KindServings: {{ID: 1, Name: "Just Me"}},
	}}
}

func TestListUsesCache(t *testing.T) {
	repo := newRepo()
	cache := &mapCache{items: map[Kind][]Item{}}
	svc := NewService(repo, cache, time.Minute)

	for i := 0; i < 3; i++ {
		items, err := svc.List(context.Background(), KindDietary)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected a single repository read, got %d", repo.listCalls)
	}
}

func TestListWithoutCacheHitsRepository(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo, nil, time.Minute)

	_, _ = svc.List(context.Background(), KindDietary)
	_, _ = svc.List(context.Background(), KindDietary)
	if repo.listCalls != 2 {
		t.Fatalf("expected 2 repository reads, got %d", repo.listCalls)
	}
}

func TestListEmptyCatalogReturnsEmptySlice(t *testing.T) {
	svc := NewService(newRepo(), nil, 0)

	items, err := svc.List(context.Background(), KindAllergy)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestListUnknownKind(t *testing.T) {
	svc := NewService(newRepo(), nil, 0)
	if _, err := svc.List(context.Background(), Kind("users")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestGet(t *testing.T) {
	svc := NewService(newRepo(), nil, 0)

	item, err := svc.Get(context.Background(), KindServings, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Name != "Just Me" {
		t.Fatalf("expected Just Me, got %q", item.Name)
	}

	if _, err := svc.Get(context.Background(), KindServings, 0); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for id 0, got %v", err)
	}
	if _, err := svc.Get(context.Background(), KindServings, 42); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
