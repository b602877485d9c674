package di

import (
	"go.uber.org/fx"

	"github.com/dakarmarket/backend/internal/app"
	"github.com/dakarmarket/backend/internal/cache"
	"github.com/dakarmarket/backend/internal/config"
	"github.com/dakarmarket/backend/internal/logger"
	"github.com/dakarmarket/backend/internal/notify"
	"github.com/dakarmarket/backend/internal/pkg/auth"
	"github.com/dakarmarket/backend/internal/server/http/router"
	"github.com/dakarmarket/backend/internal/storage/postgres"
	"github.com/dakarmarket/backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
