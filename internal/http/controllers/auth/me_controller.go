package auth

import (
	"errors"
	"net/http"

	httperrors "github.com/dropDatabas3/passcode/internal/http/errors"
	"github.com/dropDatabas3/passcode/internal/http/helpers"
	"github.com/dropDatabas3/passcode/internal/http/middlewares"
	svc "github.com/dropDatabas3/passcode/internal/http/services/auth"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
)

// MeController expone el perfil del usuario autenticado.
type MeController struct {
	service svc.MeService
}

// NewMeController crea un nuevo controller de perfil.
func NewMeController(service svc.MeService) *MeController {
	return &MeController{service: service}
}

// Me maneja GET /api/auth/me
func (c *MeController) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("MeController.Me"))

	userID := middlewares.GetUserID(ctx)
	if userID == "" {
		// No debería pasar detrás de RequireAuth.
		httperrors.WriteError(w, httperrors.ErrTokenMissing)
		return
	}

	result, err := c.service.CurrentUser(ctx, userID)
	if err != nil {
		if errors.Is(err, svc.ErrMeNotFound) {
			httperrors.WriteError(w, httperrors.ErrUserNotFound)
			return
		}
		log.Error("me failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, result)
}
