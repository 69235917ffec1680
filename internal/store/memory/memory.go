// Package memory implementa core.Repository en memoria. Pensado para tests
// y desarrollo sin base; replica la semántica de conflicto del adapter mongo.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/passcode/internal/store/core"
)

type Store struct {
	mu    sync.RWMutex
	users map[string]*core.User
	creds map[string]*core.CredentialRecord

	usersRepo userRepository
	credsRepo credentialRepository
}

func New() *Store {
	s := &Store{
		users: make(map[string]*core.User),
		creds: make(map[string]*core.CredentialRecord),
	}
	s.usersRepo = userRepository{s: s}
	s.credsRepo = credentialRepository{s: s}
	return s
}

func (s *Store) Users() core.UserRepository             { return &s.usersRepo }
func (s *Store) Credentials() core.CredentialRepository { return &s.credsRepo }
func (s *Store) Ping(ctx context.Context) error         { return nil }
func (s *Store) Close(ctx context.Context) error        { return nil }

// ---- users ----

type userRepository struct{ s *Store }

func (r *userRepository) Insert(ctx context.Context, u *core.User) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Unicidad chequeada bajo el mismo lock que inserta: atómico, como el
	// unique index de la base real.
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return "", core.ErrConflict
		}
		if u.Email != "" && existing.Email == u.Email {
			return "", core.ErrConflict
		}
		if u.Phone != "" && existing.Phone == u.Phone {
			return "", core.ErrConflict
		}
	}

	cp := *u
	cp.ID = uuid.NewString()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	r.s.users[cp.ID] = &cp
	return cp.ID, nil
}

func (r *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*core.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == identifier ||
			(u.Email != "" && u.Email == identifier) ||
			(u.Phone != "" && u.Phone == identifier) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*core.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// ---- credentials ----

type credentialRepository struct{ s *Store }

func (r *credentialRepository) Insert(ctx context.Context, rec *core.CredentialRecord) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *rec
	cp.ID = uuid.NewString()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	r.s.creds[cp.ID] = &cp
	return cp.ID, nil
}

func (r *credentialRepository) ListByOwner(ctx context.Context, ownerID string) ([]core.CredentialRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]core.CredentialRecord, 0)
	for _, rec := range r.s.creds {
		if rec.OwnerID == ownerID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *credentialRepository) FindByID(ctx context.Context, id string) (*core.CredentialRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.creds[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *credentialRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.creds[id]; !ok {
		return false, nil
	}
	delete(r.s.creds, id)
	return true, nil
}
