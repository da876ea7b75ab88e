// Package config loads typed configuration structs from environment variables.
//
// Struct fields are described with github.com/caarlos0/env/v11 tags
// (env, envDefault, required). Optional dotenv files are read with
// github.com/joho/godotenv first, without overriding variables that are
// already set.
//
// # Usage
//
//	type Config struct {
//		Addr   string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Secret string        `env:"SECRET_JWT,required"`
//		TTL    time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
//	}
//
//	cfg, err := config.Load[Config](config.WithEnvFiles(".env"))
//	if err != nil {
//		// missing or malformed configuration: refuse to start
//	}
//
// # Error Handling
//
// Failures are joined with ErrParsingConfig or ErrLoadingEnvFile so callers
// can use errors.Is while still seeing the underlying cause.
package config
