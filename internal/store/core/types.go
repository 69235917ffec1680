package core

import "time"

// User es la cuenta global del servicio. Inmutable después del registro:
// no hay update ni delete de cuentas.
type User struct {
	ID           string
	Username     string
	Email        string // opcional; único si está presente
	Phone        string // opcional; único si está presente
	PasswordHash string // PHC argon2id, nunca el plaintext
	CreatedAt    time.Time
}

// PublicUser is the projection returned to clients. Never carries the hash.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Public devuelve la proyección pública del usuario.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

// CredentialRecord es un registro de credencial guardado por un usuario.
// OwnerID referencia a User.ID; el chequeo de pertenencia es responsabilidad
// de la capa de servicio, no del store.
type CredentialRecord struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Site      string    `json:"site"`
	Link      string    `json:"link"`
	Username  string    `json:"username"` // login propio de la credencial, no el de la cuenta
	Secret    string    `json:"secret"`   // guardado tal cual llega (sin cifrado at-rest)
	CreatedAt time.Time `json:"createdAt"`
}
