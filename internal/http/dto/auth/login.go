package auth

// LoginRequest es el payload de POST /api/auth/login. Identifier puede ser
// username, email o phone; se resuelve en una sola búsqueda.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}
