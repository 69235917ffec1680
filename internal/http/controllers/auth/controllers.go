// Package auth contiene los controllers de autenticación.
package auth

import svc "github.com/dropDatabas3/passcode/internal/http/services/auth"

// Controllers agrupa todos los controllers del dominio auth.
type Controllers struct {
	Register *RegisterController
	Login    *LoginController
	Me       *MeController
}

// NewControllers crea el agregador de controllers auth.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Register: NewRegisterController(s.Register),
		Login:    NewLoginController(s.Login),
		Me:       NewMeController(s.Me),
	}
}
