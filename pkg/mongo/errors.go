package mongo

import "errors"

// Errors returned by New and Healthcheck. Driver errors are joined onto them.
var (
	ErrEmptyConnectionURL = errors.New("mongo: empty connection URL, set MONGODB_URL")
	ErrNotReady           = errors.New("mongo: deployment did not answer in time")
	ErrHealthcheckFailed  = errors.New("mongo: healthcheck failed")
)
