package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authgate/handler"
	"github.com/dmitrymomot/authgate/pkg/logger"
)

// dummyPassword is hashed once and compared against on unknown emails.
const dummyPassword = "authgate-timing-equalizer"

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithBcryptCost sets the bcrypt cost for new password hashes.
// Values outside bcrypt's accepted range are ignored.
func WithBcryptCost(cost int) ServiceOption {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// Service implements signup and signin on top of a Store and a token issuer.
type Service struct {
	store      Store
	issuer     TokenIssuer
	bcryptCost int
	log        *slog.Logger
	dummyHash  func() []byte
}

// NewService creates the credential service.
func NewService(store Store, issuer TokenIssuer, opts ...ServiceOption) *Service {
	s := &Service{
		store:      store,
		issuer:     issuer,
		bcryptCost: bcrypt.DefaultCost,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.dummyHash = sync.OnceValue(func() []byte {
		hash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), s.bcryptCost)
		if err != nil {
			panic(fmt.Sprintf("auth: hashing dummy password: %v", err))
		}
		return hash
	})

	return s
}

// Signup registers a user and returns a token for it.
//
// Empty input fails with ErrMissingCredentials before the store is touched.
// A taken email fails with a handler.ValidationError that also matches
// ErrEmailAlreadyExists.
func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", handler.FieldError("password", "must be at most 72 bytes")
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	identity, err := s.store.Create(ctx, NewUser{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return "", fmt.Errorf("%w: %w", ErrEmailAlreadyExists, handler.FieldError("email", "already registered"))
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issuer.Issue(identity.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		logger.Component("auth"),
		logger.Event("signup"),
		logger.UserID(identity.ID),
	)
	return token, nil
}

// Signin checks the credentials and returns a fresh token.
// An unknown email and a wrong password both yield ErrInvalidCredentials
// after the same amount of bcrypt work.
func (s *Service) Signin(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
			s.rejected(ctx)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !account.VerifySecret(password) {
		s.rejected(ctx)
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(account.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		logger.Component("auth"),
		logger.Event("signin"),
		logger.UserID(account.ID),
	)
	return token, nil
}

func (s *Service) rejected(ctx context.Context) {
	s.log.InfoContext(ctx, "signin rejected",
		logger.Component("auth"),
		logger.Event("signin_failed"),
	)
}
