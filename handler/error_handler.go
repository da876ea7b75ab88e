package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authgate/pkg/environment"
	"github.com/dmitrymomot/authgate/pkg/logger"
)

// ErrorBody is the normalized error payload.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request. Stack is only set in development.
type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Stack   string `json:"stack,omitempty"`
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

type statusRule struct {
	target error
	status int
}

type errorHandlerConfig struct {
	env   environment.Environment
	rules []statusRule
}

// WithEnvironment selects the development or production formatter.
func WithEnvironment(env environment.Environment) ErrorHandlerOption {
	return func(c *errorHandlerConfig) { c.env = env }
}

// WithStatus answers status for every error matching target with errors.Is.
// Rules are checked in registration order.
func WithStatus(target error, status int) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		c.rules = append(c.rules, statusRule{target: target, status: status})
	}
}

// classify returns the response status and public message for err.
func (c *errorHandlerConfig) classify(err error) (int, string) {
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for _, rule := range c.rules {
		if errors.Is(err, rule.target) {
			return rule.status, err.Error()
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}

	if c.env.IsDevelopment() {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func (c *errorHandlerConfig) stack(err error) string {
	if !c.env.IsDevelopment() {
		return ""
	}
	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		return panicErr.Stack()
	}
	return errorChain(err)
}

// NewErrorHandler builds the error normalizer every request failure funnels into.
//
// Status: ValidationError answers 400, WithStatus rules next, then HTTPError
// codes, otherwise 500. The body is always {"error":{"message","status"}};
// development adds "stack" and keeps internal messages, production hides
// both. Every error is logged, 4xx at WARN and 5xx at ERROR.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	cfg := &errorHandlerConfig{env: environment.Production}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx Context, err error) {
		if err == nil {
			err = ErrInternal
		}
		r := ctx.Request()
		status, message := cfg.classify(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Component("error_handler"),
			logger.Error(err),
			logger.StatusCode(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		body := ErrorBody{Error: ErrorDetail{
			Message: message,
			Status:  status,
			Stack:   cfg.stack(err),
		}}

		w := ctx.ResponseWriter()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(status)
		if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Component("error_handler"),
				logger.Error(encErr),
			)
		}
	}
}
