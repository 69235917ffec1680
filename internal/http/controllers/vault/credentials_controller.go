// Package vault contiene los controllers de credenciales.
package vault

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	dto "github.com/dropDatabas3/passcode/internal/http/dto/vault"
	httperrors "github.com/dropDatabas3/passcode/internal/http/errors"
	"github.com/dropDatabas3/passcode/internal/http/helpers"
	"github.com/dropDatabas3/passcode/internal/http/middlewares"
	svc "github.com/dropDatabas3/passcode/internal/http/services/vault"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
)

// CredentialsController maneja los endpoints /api/credentials.
type CredentialsController struct {
	service svc.CredentialService
}

// NewCredentialsController crea el controller de credenciales.
func NewCredentialsController(service svc.CredentialService) *CredentialsController {
	return &CredentialsController{service: service}
}

// List maneja GET /api/credentials
func (c *CredentialsController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("CredentialsController.List"))

	ownerID := middlewares.GetUserID(ctx)
	if ownerID == "" {
		httperrors.WriteError(w, httperrors.ErrTokenMissing)
		return
	}

	records, err := c.service.List(ctx, ownerID)
	if err != nil {
		log.Error("list failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
		return
	}

	// Array pelado, sin envelope.
	helpers.WriteJSON(w, http.StatusOK, records)
}

// Create maneja POST /api/credentials
func (c *CredentialsController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("CredentialsController.Create"))

	ownerID := middlewares.GetUserID(ctx)
	if ownerID == "" {
		httperrors.WriteError(w, httperrors.ErrTokenMissing)
		return
	}

	var req dto.CreateCredentialRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	result, err := c.service.Create(ctx, ownerID, req)
	if err != nil {
		log.Error("create failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, result)
}

// Delete maneja DELETE /api/credentials/{id}
func (c *CredentialsController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("CredentialsController.Delete"))

	ownerID := middlewares.GetUserID(ctx)
	if ownerID == "" {
		httperrors.WriteError(w, httperrors.ErrTokenMissing)
		return
	}

	recordID := chi.URLParam(r, "id")

	if err := c.service.Delete(ctx, ownerID, recordID); err != nil {
		switch {
		case errors.Is(err, svc.ErrInvalidRecordID):
			httperrors.WriteError(w, httperrors.ErrInvalidRecordID)
		case errors.Is(err, svc.ErrRecordNotFound):
			// Misma respuesta para inexistente y ajeno.
			httperrors.WriteError(w, httperrors.ErrNotFound)
		default:
			log.Error("delete failed", logger.Err(err))
			httperrors.WriteError(w, httperrors.ErrInternalServerError)
		}
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.DeleteCredentialResponse{Success: true, Deleted: true})
}
