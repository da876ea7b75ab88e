// Package logger builds the service's *slog.Logger.
//
// New assembles a text or JSON handler from functional options and wraps it
// with LogHandlerDecorator, which injects request-scoped attributes (for
// example the request id) pulled from the context passed to the *Context
// logging methods. WithEnvironment applies the development or production
// preset in one call.
//
// Attribute helpers in attr.go (Error, UserID, RequestID, Component, ...) keep
// key names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "authgate"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "user signed in", logger.UserID(id), logger.Component("auth"))
package logger
