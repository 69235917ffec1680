// Package app arma el contenedor de dependencias del servicio.
// Se construye una sola vez en main y se pasa explícito; nada de globals
// para db o claves.
package app

import (
	"github.com/dropDatabas3/passcode/internal/config"
	jwtx "github.com/dropDatabas3/passcode/internal/jwt"
	"github.com/dropDatabas3/passcode/internal/store/core"
)

// Container agrupa las dependencias compartidas del proceso.
type Container struct {
	Cfg    *config.Config
	Store  core.Repository
	Issuer *jwtx.Issuer
}

// New arma el contenedor a partir de config y store ya inicializados.
func New(cfg *config.Config, store core.Repository) *Container {
	return &Container{
		Cfg:    cfg,
		Store:  store,
		Issuer: jwtx.NewIssuer(cfg.JWT.Secret, cfg.AccessTTL()),
	}
}
