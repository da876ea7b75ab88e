package userstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authgate/pkg/auth"
)

type memoryRecord struct {
	identity auth.Identity
	hash     []byte
}

// Memory is an in-process auth.Store.
type Memory struct {
	mu      sync.RWMutex
	byID    map[string]memoryRecord
	byEmail map[string]string
	now     func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		byID:    make(map[string]memoryRecord),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (m *Memory) Create(_ context.Context, user auth.NewUser) (*auth.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byEmail[user.Email]; taken {
		return nil, auth.ErrEmailAlreadyExists
	}

	identity := auth.Identity{
		ID:        uuid.NewString(),
		Email:     user.Email,
		CreatedAt: m.now().UTC(),
	}
	m.byID[identity.ID] = memoryRecord{identity: identity, hash: slices.Clone(user.PasswordHash)}
	m.byEmail[identity.Email] = identity.ID

	return &identity, nil
}

func (m *Memory) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	rec := m.byID[id]
	return auth.NewAccount(rec.identity, slices.Clone(rec.hash)), nil
}

func (m *Memory) FindByID(_ context.Context, id string) (*auth.Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byID[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	identity := rec.identity
	return &identity, nil
}

// Delete removes a user. Tokens issued to it stop passing the gate.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.byID[id]
	if !ok {
		return auth.ErrUserNotFound
	}
	delete(m.byID, id)
	delete(m.byEmail, rec.identity.Email)
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }
