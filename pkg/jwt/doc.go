// Package jwt issues and verifies the session tokens handed out by the auth
// endpoints.
//
// Tokens are HS256 JSON Web Tokens signed with a single process-wide key. The
// only application claim is the subject (the user id); issued-at and expiry
// are derived from the configured lifetime. Nothing is stored server side:
// a token is valid as long as its signature matches and it has not expired.
//
// # Architecture
//
//   - Service – issues and verifies tokens (github.com/golang-jwt/jwt/v5).
//   - Lifetime – configuration type accepting "15m", "7d", "3600" and similar.
//   - extract.go – Bearer header extraction.
//   - context.go – helpers to carry the raw token on a context.Context.
//   - errors.go – sentinel errors; every verification failure wraps ErrInvalidToken.
//
// # Usage
//
//	import "github.com/dmitrymomot/authgate/pkg/jwt"
//
//	svc, err := jwt.New(jwt.Config{SigningKey: "super-secret", Lifetime: jwt.Lifetime(24 * time.Hour)})
//	if err != nil {
//		// missing key or lifetime: refuse to start
//	}
//
//	token, err := svc.Issue(userID)
//
//	subject, err := svc.Verify(token)
//	if errors.Is(err, jwt.ErrInvalidToken) {
//		// malformed, tampered or expired
//	}
//
// # Error Handling
//
// Verify never returns a bare library error. Callers dispatch on
// ErrInvalidToken and may inspect the reason (ErrMalformedToken,
// ErrInvalidSignature, ErrExpiredToken, ErrMissingSubject) with errors.Is.
// The error message is the reason alone ("invalid signature", "token is
// expired"), which is what the error normalizer shows clients.
package jwt
