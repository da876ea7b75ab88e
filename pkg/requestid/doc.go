// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a valid client supplied X-Request-ID (alphanumerics, "-"
// and "_", at most 128 characters) and otherwise generates a UUID. The id is
// stored on the request context, echoed in the response header and, through
// LoggerExtractor, added to every log record written with that context.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
