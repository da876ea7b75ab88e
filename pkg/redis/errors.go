package redis

import "errors"

// Errors returned by Connect and Healthcheck. Driver errors are joined onto them.
var (
	ErrEmptyConnectionURL   = errors.New("redis: empty connection URL, set REDIS_URL")
	ErrInvalidConnectionURL = errors.New("redis: invalid connection URL")
	ErrNotReady             = errors.New("redis: server did not answer in time")
	ErrHealthcheckFailed    = errors.New("redis: healthcheck failed")
)
