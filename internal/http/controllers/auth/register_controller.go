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

// RegisterController maneja el endpoint de registro.
type RegisterController struct {
	service svc.RegisterService
}

// NewRegisterController crea un nuevo controller de registro.
func NewRegisterController(service svc.RegisterService) *RegisterController {
	return &RegisterController{service: service}
}

// Register maneja POST /api/auth/register
func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RegisterController.Register"))

	var req dto.RegisterRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrRegisterValidation):
			httperrors.WriteError(w, httperrors.ErrValidation.WithDetail(err.Error()))
		case errors.Is(err, svc.ErrRegisterConflict):
			httperrors.WriteError(w, httperrors.ErrAlreadyExists)
		default:
			log.Error("register failed", logger.Err(err))
			httperrors.WriteError(w, httperrors.ErrInternalServerError)
		}
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	helpers.WriteJSON(w, http.StatusCreated, result)
}
