package auth

import "context"

// Store persists users. Email matching is exact (case-sensitive).
type Store interface {
	// Create persists a new user and returns its identity.
	// It fails with ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user NewUser) (*Identity, error)
	// FindByEmail loads the account including its password hash, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*Account, error)
	// FindByID loads the identity without secret material, or ErrUserNotFound.
	// Ids the backend cannot parse are reported as ErrUserNotFound too.
	FindByID(ctx context.Context, id string) (*Identity, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// IdentityFinder is the part of Store the gate needs.
type IdentityFinder interface {
	FindByID(ctx context.Context, id string) (*Identity, error)
}

// TokenIssuer signs a token for a subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenVerifier returns the subject of a valid token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
