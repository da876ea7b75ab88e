package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// SigningMethod is the only algorithm the service signs with and accepts.
var SigningMethod = gojwt.SigningMethodHS256

// Config holds the process-wide token settings.
// Both values are mandatory: a service cannot be built without them.
type Config struct {
	SigningKey string   `env:"SECRET_JWT,required"` // SigningKey is the HMAC secret shared by issue and verify.
	Lifetime   Lifetime `env:"JWT_EXP,required"`    // Lifetime is the token validity, e.g. "15m", "12h", "7d" or seconds.
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service issues and verifies HS256 tokens carrying a single subject.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	signingKey []byte
	lifetime   time.Duration
	now        func() time.Time
	parser     *gojwt.Parser
}

// New creates a token service from the given configuration.
// It returns ErrMissingSigningKey or ErrInvalidLifetime for unusable settings;
// callers are expected to treat both as fatal at startup.
func New(cfg Config, opts ...Option) (*Service, error) {
	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}
	if cfg.Lifetime.Duration() <= 0 {
		return nil, ErrInvalidLifetime
	}

	s := &Service{
		signingKey: []byte(cfg.SigningKey),
		lifetime:   cfg.Lifetime.Duration(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = gojwt.NewParser(
		gojwt.WithValidMethods([]string{SigningMethod.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithStrictDecoding(),
		gojwt.WithTimeFunc(s.now),
	)

	return s, nil
}

// Lifetime returns the configured token validity.
func (s *Service) Lifetime() time.Duration {
	return s.lifetime
}

// Issue builds a signed token for subject that expires after the configured lifetime.
func (s *Service) Issue(subject string) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}

	now := s.now()
	token := gojwt.NewWithClaims(SigningMethod, gojwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(now.Add(s.lifetime)),
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the token signature and expiry and returns its subject.
// Every failure matches ErrInvalidToken and the specific reason; its message
// is the reason alone.
func (s *Service) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", invalid(ErrMalformedToken)
	}

	claims := &gojwt.RegisteredClaims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*gojwt.Token) (any, error) {
		return s.signingKey, nil
	})
	if err != nil {
		return "", invalid(reason(err))
	}

	if claims.Subject == "" {
		return "", invalid(ErrMissingSubject)
	}

	return claims.Subject, nil
}

// reason maps library errors onto the package's sentinel reasons.
func reason(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid), errors.Is(err, gojwt.ErrSignatureInvalid):
		return ErrInvalidSignature
	default:
		return ErrMalformedToken
	}
}

// verifyError matches ErrInvalidToken and its reason with errors.Is while
// printing only the reason, so clients see e.g. "invalid signature".
type verifyError struct {
	reason error
}

func (e *verifyError) Error() string   { return e.reason.Error() }
func (e *verifyError) Unwrap() []error { return []error{ErrInvalidToken, e.reason} }

func invalid(reason error) error {
	return &verifyError{reason: reason}
}
