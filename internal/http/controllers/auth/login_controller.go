package auth

import (
	"errors"
	"net/http"

	dto "github.com/dropDatabas3/passcode/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/passcode/internal/http/errors"
	"github.com/dropDatabas3/passcode/internal/http/helpers"
	svc "github.com/dropDatabas3/passcode/internal/http/services/auth"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
)

// LoginController maneja el endpoint de login.
type LoginController struct {
	service svc.LoginService
}

// NewLoginController crea un nuevo controller de login.
func NewLoginController(service svc.LoginService) *LoginController {
	return &LoginController{service: service}
}

// Login maneja POST /api/auth/login
func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.Login"))

	var req dto.LoginRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrLoginValidation):
			httperrors.WriteError(w, httperrors.ErrValidation.WithDetail("identifier y password son obligatorios"))
		case errors.Is(err, svc.ErrLoginInvalid):
			// Cuerpo idéntico para usuario inexistente y password incorrecta.
			httperrors.WriteError(w, httperrors.ErrInvalidCredentials)
		default:
			log.Error("login failed", logger.Err(err))
			httperrors.WriteError(w, httperrors.ErrInternalServerError)
		}
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	helpers.WriteJSON(w, http.StatusOK, result)
}
