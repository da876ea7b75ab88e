package userstore

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authgate/pkg/auth"
	"github.com/dmitrymomot/authgate/pkg/pg"
)

// Migrations holds the goose migrations for the Postgres store, under "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations to pass to pg.Migrate.
const MigrationsDir = "migrations"

// Postgres is an auth.Store backed by the users table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an open pool. The schema must already be migrated.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Create(ctx context.Context, user auth.NewUser) (*auth.Identity, error) {
	identity := auth.Identity{ID: uuid.NewString(), Email: user.Email}

	err := p.pool.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) RETURNING created_at`,
		identity.ID, user.Email, user.PasswordHash,
	).Scan(&identity.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	identity.CreatedAt = identity.CreatedAt.UTC()
	return &identity, nil
}

func (p *Postgres) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	var (
		identity auth.Identity
		hash     []byte
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id::text, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&identity.ID, &identity.Email, &hash, &identity.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}

	identity.CreatedAt = identity.CreatedAt.UTC()
	return auth.NewAccount(identity, hash), nil
}

func (p *Postgres) FindByID(ctx context.Context, id string) (*auth.Identity, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, auth.ErrUserNotFound
	}

	var (
		identity  auth.Identity
		createdAt time.Time
	)
	err := p.pool.QueryRow(ctx,
		`SELECT id::text, email, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&identity.ID, &identity.Email, &createdAt)
	if err != nil {
		if pg.IsNotFoundError(err) || pg.IsInvalidTextRepresentation(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by id: %w", err)
	}

	identity.CreatedAt = createdAt.UTC()
	return &identity, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return pg.Healthcheck(p.pool)(ctx)
}
