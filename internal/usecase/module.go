package usecase

import (
	"go.uber.org/fx"

	"github.com/dakarmarket/backend/internal/cache"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(func(c *cache.CatalogCache) ProductCache { return c }),
	fx.Provide(
		NewAuthUseCase,
		NewCatalogUseCase,
		NewCartUseCase,
		NewFavoriteUseCase,
		NewOrderUseCase,
		NewMessageUseCase,
	),
)
