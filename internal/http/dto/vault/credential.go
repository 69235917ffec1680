// Package vault contiene los DTOs de los endpoints de credenciales.
package vault

// CreateCredentialRequest es el payload de POST /api/credentials.
// Todos los campos son opcionales: se persiste lo que el cliente mande.
type CreateCredentialRequest struct {
	Site     string `json:"site"`
	Link     string `json:"link"`
	Username string `json:"username"`
	Secret   string `json:"secret"`
}

// CreateCredentialResponse confirma el alta con el id asignado.
type CreateCredentialResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// DeleteCredentialResponse confirma la baja.
type DeleteCredentialResponse struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}
