package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/dakarmarket/backend/internal/config"
)

// Module wires the Kafka publisher and its shutdown hook.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) *Publisher {
	return NewPublisher(p.Config.KafkaBrokers, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher *Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
}
