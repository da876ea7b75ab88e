// Package api assembles the HTTP surface: auth endpoints, the protected
// /api group, health probes and the shared error normalizer.
//
//	eh := api.NewErrorHandler(log, environment.Production)
//	router := api.NewRouter(api.Deps{
//		Auth:         auth.NewHandler(svc),
//		Gate:         auth.NewGate(tokens, store, eh),
//		ErrorHandler: eh,
//		Logger:       log,
//		Ready:        []httpserver.Check{store.Ping},
//	})
package api
