package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Identity is a user without any secret material. It is what the gate
// attaches to a request and what stores return for id lookups.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Account is an Identity loaded together with its password hash.
// The hash can only be checked with VerifySecret, never read back.
type Account struct {
	Identity
	secret []byte
}

// NewAccount is how stores build an Account from a persisted record.
func NewAccount(identity Identity, passwordHash []byte) *Account {
	return &Account{Identity: identity, secret: passwordHash}
}

// VerifySecret reports whether candidate matches the stored bcrypt hash.
func (a *Account) VerifySecret(candidate string) bool {
	if a == nil || len(a.secret) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.secret, []byte(candidate)) == nil
}

// NewUser is the payload a Store persists on signup.
type NewUser struct {
	Email        string
	PasswordHash []byte
}
