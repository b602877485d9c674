package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dakarmarket/backend/internal/domain/model"
)

const catalogKey = "catalog:all"

// redisClient is the subset of redis.Client used by the catalog cache.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// CatalogCache keeps the unfiltered product catalog in Redis. Filtered
// listings always hit the database. Cache failures degrade to misses so
// Redis going away never takes the catalog down with it.
type CatalogCache struct {
	client redisClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCatalogCache(addr string, ttl time.Duration, logger *slog.Logger) *CatalogCache {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &CatalogCache{client: client, ttl: ttl, logger: logger}
}

// GetCatalog returns cached products, or ok=false on a miss.
func (c *CatalogCache) GetCatalog(ctx context.Context) ([]model.Product, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", "error", err)
		}
		return nil, false
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.logger.Warn("catalog cache decode failed", "error", err)
		return nil, false
	}
	return products, true
}

func (c *CatalogCache) SetCatalog(ctx context.Context, products []model.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn("catalog cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", "error", err)
	}
}

// Invalidate drops the cached catalog after a product mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Warn("catalog cache invalidation failed", "error", err)
	}
}

func (c *CatalogCache) Close() error {
	return c.client.Close()
}
