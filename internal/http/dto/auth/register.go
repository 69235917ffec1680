package auth

// RegisterRequest es el payload de POST /api/auth/register.
// Email y Phone son opcionales, pero al menos uno debe venir.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
