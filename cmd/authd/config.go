package main

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/authgate/pkg/config"
	"github.com/dmitrymomot/authgate/pkg/environment"
	"github.com/dmitrymomot/authgate/pkg/httpserver"
	"github.com/dmitrymomot/authgate/pkg/jwt"
)

// Store drivers selectable with STORE_DRIVER.
const (
	driverMemory   = "memory"
	driverPostgres = "postgres"
	driverMongo    = "mongo"
	driverRedis    = "redis"
)

var errUnknownDriver = errors.New("unknown store driver")

type appConfig struct {
	Env         environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name        string                  `env:"APP_NAME" envDefault:"authgate"`
	BcryptCost  int                     `env:"BCRYPT_COST" envDefault:"10"`
	StoreDriver string                  `env:"STORE_DRIVER" envDefault:"memory"`
	// ClientIPHeaders lists proxy headers trusted for the client address; empty means RemoteAddr only.
	ClientIPHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:","`
	JWT             jwt.Config
	HTTP            httpserver.Config
}

func loadConfig(opts ...config.Option) (appConfig, error) {
	cfg, err := config.Load[appConfig](opts...)
	if err != nil {
		return appConfig{}, err
	}

	switch cfg.StoreDriver {
	case driverMemory, driverPostgres, driverMongo, driverRedis:
	default:
		return appConfig{}, fmt.Errorf("%w: %q", errUnknownDriver, cfg.StoreDriver)
	}

	return cfg, nil
}
