package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dakarmarket/backend/internal/config"
)

// Module wires the Redis catalog cache.
var Module = fx.Options(
	fx.Provide(newCatalogCache),
	fx.Invoke(registerLifecycle),
)

type cacheParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newCatalogCache(p cacheParams) *CatalogCache {
	return NewCatalogCache(p.Config.RedisAddr, p.Config.CatalogCacheTTL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, cache *CatalogCache) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cache.Close()
		},
	})
}
