package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	catalogdomain "diet-profile-go/internal/domain/catalog"
	"diet-profile-go/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
)

// CatalogCache stores catalog listings as JSON under prefix + kind.
// Redis failures degrade to cache misses.
type CatalogCache struct {
	client goredis.UniversalClient
	prefix string
	log    logger.Logger
}

func NewCatalogCache(client goredis.UniversalClient, prefix string, log logger.Logger) *CatalogCache {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogCache{client: client, prefix: prefix, log: log}
}

func (c *CatalogCache) key(kind catalogdomain.Kind) string {
	return c.prefix + "catalog:" + string(kind)
}

func (c *CatalogCache) Get(ctx context.Context, kind catalogdomain.Kind) ([]catalogdomain.Item, bool) {
	raw, err := c.client.Get(ctx, c.key(kind)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn("catalog cache: get failed", "kind", kind, "err", err)
		}
		return nil, false
	}

	var items []catalogdomain.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn("catalog cache: corrupt entry", "kind", kind, "err", err)
		c.Delete(ctx, kind)
		return nil, false
	}
	return items, true
}

func (c *CatalogCache) Set(ctx context.Context, kind catalogdomain.Kind, items []catalogdomain.Item, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete(ctx, kind)
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		c.log.Warn("catalog cache: encode failed", "kind", kind, "err", err)
		return
	}
	if err := c.client.Set(ctx, c.key(kind), payload, ttl).Err(); err != nil {
		c.log.Warn("catalog cache: set failed", "kind", kind, "err", err)
	}
}

func (c *CatalogCache) Delete(ctx context.Context, kind catalogdomain.Kind) {
	if err := c.client.Del(ctx, c.key(kind)).Err(); err != nil {
		c.log.Warn("catalog cache: delete failed", "kind", kind, "err", err)
	}
}
