package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authgate/handler"
	"github.com/dmitrymomot/authgate/pkg/jwt"
	"github.com/dmitrymomot/authgate/pkg/logger"
)

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithGateLogger sets the logger for rejected requests.
func WithGateLogger(l *slog.Logger) GateOption {
	return func(g *Gate) {
		if l != nil {
			g.log = l
		}
	}
}

// Gate admits requests carrying a valid bearer token for an existing user.
type Gate struct {
	verifier TokenVerifier
	finder   IdentityFinder
	onError  handler.ErrorHandler[handler.Context]
	log      *slog.Logger
}

// NewGate creates the access gate. Token and unexpected store failures are
// handed to onError.
func NewGate(verifier TokenVerifier, finder IdentityFinder, onError handler.ErrorHandler[handler.Context], opts ...GateOption) *Gate {
	g := &Gate{
		verifier: verifier,
		finder:   finder,
		onError:  onError,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Middleware runs the gate before next.
//
// A missing or non-Bearer Authorization header and a token whose user no
// longer exists answer 401 with an empty body. Token verification failures
// go to the error handler.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := jwt.BearerToken(r)
		if !ok {
			g.log.DebugContext(ctx, "missing bearer token", logger.Component("gate"))
			reject(w, r)
			return
		}

		subject, err := g.verifier.Verify(token)
		if err != nil {
			g.onError(handler.NewContext(w, r), err)
			return
		}

		identity, err := g.finder.FindByID(ctx, subject)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				g.log.InfoContext(ctx, "token subject no longer exists",
					logger.Component("gate"),
					logger.UserID(subject),
				)
				reject(w, r)
				return
			}
			g.onError(handler.NewContext(w, r), err)
			return
		}

		ctx = WithIdentity(ctx, *identity)
		ctx = jwt.SetToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func reject(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Bearer`)
	_ = handler.EmptyWithStatus(http.StatusUnauthorized).Render(w, r)
}
