package inmemory

import (
	"context"
	"sync"
	"time"

	catalogdomain "diet-profile-go/internal/domain/catalog"
)

type InMemoryCatalogCache struct {
	mu    sync.RWMutex
	items map[catalogdomain.Kind]catalogItem
	now   func() time.Time
}

type catalogItem struct {
	value     []catalogdomain.Item
	expiresAt time.Time
}

func NewInMemoryCatalogCache() *InMemoryCatalogCache {
	return &InMemoryCatalogCache{
		items: make(map[catalogdomain.Kind]catalogItem),
		now:   time.Now,
	}
}

func (c *InMemoryCatalogCache) Get(_ context.Context, kind catalogdomain.Kind) ([]catalogdomain.Item, bool) {
	now := c.now()

	c.mu.RLock()
	item, ok := c.items[kind]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[kind]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, kind)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneItems(item.value), true
}

func (c *InMemoryCatalogCache) Set(ctx context.Context, kind catalogdomain.Kind, items []catalogdomain.Item, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete(ctx, kind)
		return
	}

	c.mu.Lock()
	c.items[kind] = catalogItem{
		value:     cloneItems(items),
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *InMemoryCatalogCache) Delete(_ context.Context, kind catalogdomain.Kind) {
	c.mu.Lock()
	delete(c.items, kind)
	c.mu.Unlock()
}

func (c *InMemoryCatalogCache) Clear() {
	c.mu.Lock()
	c.items = make(map[catalogdomain.Kind]catalogItem)
	c.mu.Unlock()
}

func cloneItems(items []catalogdomain.Item) []catalogdomain.Item {
	if items == nil {
		return nil
	}
	cloned := make([]catalogdomain.Item, len(items))
	for i := range items {
		cloned[i] = items[i]
		if items[i].LogoPath != nil {
			logo := *items[i].LogoPath
			cloned[i].LogoPath = &logo
		}
	}
	return cloned
}
