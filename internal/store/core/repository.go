package core

import "context"

// UserRepository persiste cuentas y garantiza unicidad de
// username/email/phone a nivel de base (no check-then-insert).
type UserRepository interface {
	// Insert devuelve ErrConflict si username/email/phone ya están tomados.
	Insert(ctx context.Context, u *User) (string, error)
	// FindByIdentifier busca por username, email o phone (OR lógico).
	// ErrNotFound si no hay match.
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
	// FindByID devuelve ErrNotFound si no existe, ErrInvalidID si el id
	// no tiene el formato del backend.
	FindByID(ctx context.Context, id string) (*User, error)
}

// CredentialRepository persiste registros de credenciales. No filtra por
// dueño salvo en ListByOwner; el resto del scoping lo hace el servicio.
type CredentialRepository interface {
	Insert(ctx context.Context, rec *CredentialRecord) (string, error)
	// ListByOwner: sin orden garantizado, sin paginación.
	ListByOwner(ctx context.Context, ownerID string) ([]CredentialRecord, error)
	FindByID(ctx context.Context, id string) (*CredentialRecord, error)
	// DeleteByID reporta si borró algo.
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// Repository agrupa los repositorios sobre una misma base.
type Repository interface {
	Users() UserRepository
	Credentials() CredentialRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
