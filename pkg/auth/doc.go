// Package auth issues tokens for email and password credentials and guards
// routes with a bearer token gate.
//
// Service implements signup and signin on top of a Store (see
// pkg/userstore for the backends) and a token issuer (pkg/jwt). Handler
// exposes both as JSON endpoints that answer 201 {"token": "..."}, 400
// {"message": "need email and password"} or 401 {"message": "Invalid email
// and password combination"}. Anything else goes to the error normalizer.
//
// Gate.Middleware protects downstream routes. It resolves the token subject
// to an Identity and attaches it to the request context:
//
//	gate := auth.NewGate(tokens, store, errorHandler)
//	r.With(gate.Middleware).Get("/api/me", meHandler)
//
//	func me(ctx handler.Context, _ struct{}) handler.Response {
//		identity := auth.MustIdentity(ctx)
//		...
//	}
//
// Password hashes never leave the package as data: Account only offers
// VerifySecret, and Identity has no secret field at all.
package auth
