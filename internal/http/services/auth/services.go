// Package auth contiene los services de autenticación.
package auth

import (
	jwtx "github.com/dropDatabas3/passcode/internal/jwt"
	"github.com/dropDatabas3/passcode/internal/store/core"
)

// Deps contiene las dependencias para crear los services auth.
type Deps struct {
	Users  core.UserRepository
	Issuer *jwtx.Issuer
}

// Services agrupa todos los services del dominio auth.
type Services struct {
	Register RegisterService
	Login    LoginService
	Me       MeService
}

// NewServices crea el agregador de services auth.
func NewServices(d Deps) Services {
	return Services{
		Register: NewRegisterService(d),
		Login:    NewLoginService(d),
		Me:       NewMeService(d),
	}
}
