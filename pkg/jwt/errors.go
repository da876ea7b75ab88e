package jwt

import "errors"

// ErrInvalidToken is the kind shared by every verification failure.
// Match it with errors.Is; the wrapped reason tells which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Verification reasons, always wrapped together with ErrInvalidToken.
var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrExpiredToken     = errors.New("token is expired")
	ErrMissingSubject   = errors.New("missing subject")
)

// Configuration errors.
var (
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrInvalidLifetime   = errors.New("jwt: invalid token lifetime")
)
