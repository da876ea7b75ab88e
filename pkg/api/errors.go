package api

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authgate/handler"
	"github.com/dmitrymomot/authgate/pkg/binder"
	"github.com/dmitrymomot/authgate/pkg/environment"
	"github.com/dmitrymomot/authgate/pkg/jwt"
)

// NewErrorHandler builds the normalizer with the service's error kinds:
// token failures are 401, oversized bodies 413 and undecodable bodies 400.
func NewErrorHandler(log *slog.Logger, env environment.Environment) handler.ErrorHandler[handler.Context] {
	return handler.NewErrorHandler(log,
		handler.WithEnvironment(env),
		handler.WithStatus(jwt.ErrInvalidToken, http.StatusUnauthorized),
		handler.WithStatus(binder.ErrBodyTooLarge, http.StatusRequestEntityTooLarge),
		handler.WithStatus(binder.ErrInvalidBody, http.StatusBadRequest),
	)
}
