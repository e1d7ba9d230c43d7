package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"parkease/internal/infra/kv"
	"parkease/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore builds the configured key-value store driver. Lifecycle hooks own
// connection cleanup.
func NewStore(lc fx.Lifecycle, cfg config.Config) (kv.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		pool, cleanup, err := kv.Connect(cfg.Store.Postgres)
		if err != nil {
			return nil, err
		}
		store, err := kv.NewPostgresStore(pool)
		if err != nil {
			cleanup()
			return nil, err
		}
		appendCleanup(lc, cleanup)
		slog.Info("kv store ready", "driver", "postgres")
		return store, nil

	case "redis":
		client, cleanup, err := kv.ConnectRedis(cfg.Store.Redis)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		slog.Info("kv store ready", "driver", "redis")
		return kv.NewRedisStore(client), nil

	case "memory":
		slog.Warn("kv store ready", "driver", "memory", "note", "state is not durable")
		return kv.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown KV_DRIVER %q", cfg.Store.Driver)
	}
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
}
