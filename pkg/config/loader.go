package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*loader)

type loader struct {
	envFiles []string
	prefix   string
	vars     map[string]string
}

// WithEnvFiles loads the given dotenv files before parsing.
// Missing files are skipped; variables already set in the process win.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.envFiles = append(l.envFiles, files...)
	}
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(l *loader) {
		l.prefix = prefix
	}
}

// WithVars parses from vars instead of the process environment.
// Dotenv files are ignored in this mode.
func WithVars(vars map[string]string) Option {
	return func(l *loader) {
		l.vars = vars
	}
}

// Load parses environment variables into a new T based on its env struct tags.
//
// Every call parses afresh: the returned value is meant to be built once in
// main and passed explicitly to the components that need it.
//
// Example:
//
//	type DatabaseConfig struct {
//		URL     string `env:"PG_CONN_URL,required"`
//		MaxConn int32  `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//	}
//
//	cfg, err := config.Load[DatabaseConfig](config.WithEnvFiles(".env"))
func Load[T any](opts ...Option) (T, error) {
	var zero T

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	if l.vars == nil && len(l.envFiles) > 0 {
		for _, file := range l.envFiles {
			if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return zero, errors.Join(ErrLoadingEnvFile, err)
			}
		}
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Prefix:      l.prefix,
		Environment: l.vars,
	})
	if err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// MustLoad works like Load but panics on failure.
// Use it for configuration the process cannot start without.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}
