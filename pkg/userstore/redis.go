package userstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authgate/pkg/auth"
	redisconn "github.com/dmitrymomot/authgate/pkg/redis"
)

const (
	fieldEmail     = "email"
	fieldPassword  = "password_hash"
	fieldCreatedAt = "created_at"
)

// Redis is an auth.Store keeping one hash per user ("<prefix>:user:<id>")
// and an email index ("<prefix>:user:email:<email>" holding the id).
type Redis struct {
	client redis.UniversalClient
	prefix string
	ping   func(context.Context) error
}

// NewRedis creates a store; an empty prefix defaults to "authgate".
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = "authgate"
	}
	return &Redis{client: client, prefix: prefix, ping: redisconn.Healthcheck(client)}
}

func (s *Redis) userKey(id string) string     { return s.prefix + ":user:" + id }
func (s *Redis) emailKey(email string) string { return s.prefix + ":user:email:" + email }

func (s *Redis) Create(ctx context.Context, user auth.NewUser) (*auth.Identity, error) {
	identity := auth.Identity{
		ID:        uuid.NewString(),
		Email:     user.Email,
		CreatedAt: time.Now().UTC(),
	}

	claimed, err := s.client.SetNX(ctx, s.emailKey(user.Email), identity.ID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("claim email: %w", err)
	}
	if !claimed {
		return nil, auth.ErrEmailAlreadyExists
	}

	err = s.client.HSet(ctx, s.userKey(identity.ID),
		fieldEmail, identity.Email,
		fieldPassword, string(user.PasswordHash),
		fieldCreatedAt, identity.CreatedAt.Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		if delErr := s.client.Del(context.WithoutCancel(ctx), s.emailKey(user.Email)).Err(); delErr != nil {
			err = errors.Join(err, delErr)
		}
		return nil, fmt.Errorf("store user: %w", err)
	}

	return &identity, nil
}

func (s *Redis) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	id, err := s.client.Get(ctx, s.emailKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	values, err := s.client.HMGet(ctx, s.userKey(id), fieldEmail, fieldCreatedAt, fieldPassword).Result()
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	identity, ok, err := decodeIdentity(id, values)
	if err != nil {
		return nil, err
	}
	hash, _ := values[2].(string)
	if !ok || hash == "" {
		return nil, auth.ErrUserNotFound
	}

	return auth.NewAccount(identity, []byte(hash)), nil
}

func (s *Redis) FindByID(ctx context.Context, id string) (*auth.Identity, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, auth.ErrUserNotFound
	}

	values, err := s.client.HMGet(ctx, s.userKey(id), fieldEmail, fieldCreatedAt).Result()
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	identity, ok, err := decodeIdentity(id, values)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return &identity, nil
}

func (s *Redis) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// decodeIdentity reads the email and created_at values returned by HMGET.
func decodeIdentity(id string, values []any) (auth.Identity, bool, error) {
	email, _ := values[0].(string)
	if email == "" {
		return auth.Identity{}, false, nil
	}

	identity := auth.Identity{ID: id, Email: email}
	if raw, _ := values[1].(string); raw != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return auth.Identity{}, false, fmt.Errorf("decode created_at of user %s: %w", id, err)
		}
		identity.CreatedAt = createdAt.UTC()
	}
	return identity, true, nil
}
