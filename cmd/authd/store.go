package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/authgate/pkg/auth"
	"github.com/dmitrymomot/authgate/pkg/config"
	"github.com/dmitrymomot/authgate/pkg/logger"
	"github.com/dmitrymomot/authgate/pkg/mongo"
	"github.com/dmitrymomot/authgate/pkg/pg"
	"github.com/dmitrymomot/authgate/pkg/redis"
	"github.com/dmitrymomot/authgate/pkg/userstore"
)

// openStore connects the configured backend. The returned close func is never nil.
func openStore(ctx context.Context, driver string, log *slog.Logger, opts ...config.Option) (auth.Store, func(), error) {
	log = log.With(logger.Component("store"), slog.String("driver", driver))

	switch driver {
	case driverMemory:
		log.WarnContext(ctx, "using in-memory store, users are lost on restart")
		return userstore.NewMemory(), func() {}, nil

	case driverPostgres:
		cfg, err := config.Load[pg.Config](opts...)
		if err != nil {
			return nil, nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx, pool, userstore.Migrations, userstore.MigrationsDir, cfg, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return userstore.NewPostgres(pool), pool.Close, nil

	case driverMongo:
		cfg, err := config.Load[mongo.Config](opts...)
		if err != nil {
			return nil, nil, err
		}
		db, err := mongo.NewWithDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		disconnect := func() {
			if err := db.Client().Disconnect(context.WithoutCancel(ctx)); err != nil {
				log.Error("failed to disconnect", logger.Error(err))
			}
		}
		store, err := userstore.NewMongo(ctx, db)
		if err != nil {
			disconnect()
			return nil, nil, err
		}
		return store, disconnect, nil

	case driverRedis:
		cfg, err := config.Load[redis.Config](opts...)
		if err != nil {
			return nil, nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close client", logger.Error(err))
			}
		}
		return userstore.NewRedis(client, cfg.KeyPrefix), closeClient, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", errUnknownDriver, driver)
	}
}
