package auth

import "github.com/dropDatabas3/passcode/internal/store/core"

// AuthResponse es la respuesta de register y login.
type AuthResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	User    core.PublicUser `json:"user"`
}

// MeResponse es la respuesta de GET /api/auth/me.
type MeResponse struct {
	Success bool            `json:"success"`
	User    core.PublicUser `json:"user"`
}
