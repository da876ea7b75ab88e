// Command authd serves the signup, signin and protected API endpoints.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/authgate/pkg/api"
	"github.com/dmitrymomot/authgate/pkg/auth"
	"github.com/dmitrymomot/authgate/pkg/clientip"
	"github.com/dmitrymomot/authgate/pkg/config"
	"github.com/dmitrymomot/authgate/pkg/httpserver"
	"github.com/dmitrymomot/authgate/pkg/jwt"
	"github.com/dmitrymomot/authgate/pkg/logger"
	"github.com/dmitrymomot/authgate/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.New().Error("authd stopped with error", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	envFiles := config.WithEnvFiles(".env")

	cfg, err := loadConfig(envFiles)
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)

	tokens, err := jwt.New(cfg.JWT)
	if err != nil {
		return fmt.Errorf("invalid token configuration: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg.StoreDriver, log, envFiles)
	if err != nil {
		return err
	}
	defer closeStore()

	eh := api.NewErrorHandler(log, cfg.Env)
	svc := auth.NewService(store, tokens,
		auth.WithBcryptCost(cfg.BcryptCost),
		auth.WithLogger(log),
	)

	router := api.NewRouter(api.Deps{
		Auth:         auth.NewHandler(svc),
		Gate:         auth.NewGate(tokens, store, eh, auth.WithGateLogger(log)),
		ErrorHandler: eh,
		Logger:       log,
		Ready:        []httpserver.Check{store.Ping},
		ClientIP:     clientip.New(cfg.ClientIPHeaders...),
	})

	log.InfoContext(ctx, "starting authd",
		logger.Event("startup"),
		logger.Component("main"),
	)

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}
