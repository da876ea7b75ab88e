// Package handler provides typed HTTP handlers and the error normalizer that
// every failed request funnels into.
//
// # Typed handlers
//
// HandlerFunc receives a Context and a request value already bound by the
// configured binders, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	http.Handle("/signin", handler.Wrap(h.Signin,
//		handler.WithBinders[handler.Context, auth.Credentials](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, auth.Credentials](eh),
//	))
//
// Binding errors, nil responses, render errors and Error(err) responses all
// reach the error handler.
//
// # Error normalizer
//
// NewErrorHandler classifies an error into a status code and writes
//
//	{"error": {"message": "...", "status": 404}}
//
// ValidationError always maps to 400. WithStatus registers further kinds
// matched with errors.Is (the token codec's invalid-token error, for
// example), HTTPError carries its own code and everything else is a 500. In
// development the body also carries "stack": the panic stack for a
// *PanicError, otherwise the wrapped error chain.
//
// Outside development a 500 answers with the generic "Internal Server Error"
// message instead of err.Error(), so driver and panic text never reach
// clients. 4xx messages are sent as they are in every environment.
//
// NotFound and MethodNotAllowed feed router fallbacks into the same
// pipeline, and Recover does the same for panics.
package handler
