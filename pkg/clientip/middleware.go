package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authgate/pkg/logger"
)

// Middleware resolves the client IP once per request and stores it on the
// request context.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := WithContext(req.Context(), r.Resolve(req))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// LoggerExtractor adds the client IP to every record logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ip, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("client_ip", ip), true
	}
}
