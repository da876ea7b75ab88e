// Package httpserver runs the service's HTTP listener with graceful shutdown
// and exposes liveness and readiness probe handlers.
//
// Run blocks until its context is cancelled, then drains in-flight requests
// within Config.ShutdownTimeout. Signal handling belongs to the caller:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Readiness takes a list of Check functions (for example a store ping) and
// answers 503 "NOT_READY" as soon as one of them fails.
package httpserver
