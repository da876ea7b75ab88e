package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/authgate/handler"
	"github.com/dmitrymomot/authgate/pkg/auth"
	"github.com/dmitrymomot/authgate/pkg/binder"
	"github.com/dmitrymomot/authgate/pkg/clientip"
	"github.com/dmitrymomot/authgate/pkg/httpserver"
	"github.com/dmitrymomot/authgate/pkg/logger"
	"github.com/dmitrymomot/authgate/pkg/requestid"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	Auth         *auth.Handler
	Gate         *auth.Gate
	ErrorHandler handler.ErrorHandler[handler.Context]
	Logger       *slog.Logger
	Ready        []httpserver.Check
	ClientIP     *clientip.Resolver // RemoteAddr only when nil
}

// NewRouter mounts:
//
//	POST /signup, POST /signin     credential endpoints
//	GET  /api/me                   identity of the bearer (behind the gate)
//	GET  /health/live, /health/ready
//
// Unmatched routes and methods go through the error normalizer.
func NewRouter(d Deps) chi.Router {
	log := d.Logger
	if log == nil {
		log = logger.Discard()
	}
	eh := d.ErrorHandler
	if eh == nil {
		eh = handler.NewErrorHandler(log)
	}

	ips := d.ClientIP
	if ips == nil {
		ips = clientip.New()
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		ips.Middleware,
		AccessLog(log),
		handler.Recover(eh),
		middleware.CleanPath,
	)
	r.NotFound(handler.NotFound(eh))
	r.MethodNotAllowed(handler.MethodNotAllowed(eh))

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, d.Ready...))

	r.Post("/signup", handler.Wrap(d.Auth.Signup,
		handler.WithBinders[handler.Context, auth.Credentials](binder.JSON()),
		handler.WithErrorHandler[handler.Context, auth.Credentials](eh),
	))
	r.Post("/signin", handler.Wrap(d.Auth.Signin,
		handler.WithBinders[handler.Context, auth.Credentials](binder.JSON()),
		handler.WithErrorHandler[handler.Context, auth.Credentials](eh),
	))

	r.Route("/api", func(r chi.Router) {
		r.Use(d.Gate.Middleware)
		r.Get("/me", handler.Wrap(d.Auth.Me,
			handler.WithErrorHandler[handler.Context, struct{}](eh),
		))
	})

	return r
}
