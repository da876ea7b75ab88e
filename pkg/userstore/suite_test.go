package userstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authgate/pkg/auth"
)

// uniqueEmail keeps runs against shared databases independent.
func uniqueEmail(local string) string {
	return local + "+" + uuid.NewString()[:8] + "@example.com"
}

func hash(t *testing.T, password string) []byte {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

// runStoreSuite checks the auth.Store contract against any backend.
func runStoreSuite(t *testing.T, store auth.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		email := uniqueEmail("alice")
		created, err := store.Create(ctx, auth.NewUser{Email: email, PasswordHash: hash(t, "secret123")})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, email, created.Email)
		assert.False(t, created.CreatedAt.IsZero())

		byID, err := store.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byID.ID)
		assert.Equal(t, email, byID.Email)
		assert.WithinDuration(t, created.CreatedAt, byID.CreatedAt, time.Millisecond)

		account, err := store.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, created.ID, account.ID)
		assert.True(t, account.VerifySecret("secret123"))
		assert.False(t, account.VerifySecret("wrong"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		email := uniqueEmail("dup")
		_, err := store.Create(ctx, auth.NewUser{Email: email, PasswordHash: hash(t, "one")})
		require.NoError(t, err)

		_, err = store.Create(ctx, auth.NewUser{Email: email, PasswordHash: hash(t, "two")})
		assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	})

	t.Run("email is case-sensitive", func(t *testing.T) {
		email := uniqueEmail("case")
		_, err := store.Create(ctx, auth.NewUser{Email: email, PasswordHash: hash(t, "pw")})
		require.NoError(t, err)

		_, err = store.FindByEmail(ctx, "CASE"+email[len("case"):])
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.FindByEmail(ctx, uniqueEmail("ghost"))
		assert.ErrorIs(t, err, auth.ErrUserNotFound)

		_, err = store.FindByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, auth.ErrUserNotFound)

		_, err = store.FindByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("concurrent signups with one email", func(t *testing.T) {
		email := uniqueEmail("race")
		const workers = 8

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			success int
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Create(ctx, auth.NewUser{Email: email, PasswordHash: []byte("$2a$04$placeholder")})
				if err == nil {
					mu.Lock()
					success++
					mu.Unlock()
					return
				}
				assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, success)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
