// Package vault contiene el service de registros de credenciales.
// Toda operación llega ya autenticada: ownerID sale del token, nunca del body.
package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dto "github.com/dropDatabas3/passcode/internal/http/dto/vault"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
	"github.com/dropDatabas3/passcode/internal/store/core"
)

// CredentialService maneja list/create/delete scoped al dueño.
type CredentialService interface {
	List(ctx context.Context, ownerID string) ([]core.CredentialRecord, error)
	Create(ctx context.Context, ownerID string, in dto.CreateCredentialRequest) (*dto.CreateCredentialResponse, error)
	Delete(ctx context.Context, ownerID, recordID string) error
}

// Errores sentinel; el controller los mapea a HTTP.
var (
	ErrInvalidRecordID = errors.New("malformed record id")
	// ErrRecordNotFound cubre tanto registros inexistentes como ajenos;
	// el caller no debe poder distinguirlos.
	ErrRecordNotFound = errors.New("record not found")
)

// Deps contiene las dependencias del service.
type Deps struct {
	Credentials core.CredentialRepository
}

type credentialService struct {
	deps Deps
}

// NewCredentialService crea el service de credenciales.
func NewCredentialService(d Deps) CredentialService {
	return &credentialService{deps: d}
}

func (s *credentialService) List(ctx context.Context, ownerID string) ([]core.CredentialRecord, error) {
	records, err := s.deps.Credentials.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	// Nunca nil: la lista vacía serializa como [].
	if records == nil {
		records = []core.CredentialRecord{}
	}
	return records, nil
}

func (s *credentialService) Create(ctx context.Context, ownerID string, in dto.CreateCredentialRequest) (*dto.CreateCredentialResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("vault.credentials"),
		logger.Op("Create"),
	)

	// El contenido del registro es del usuario: se guarda lo que mande,
	// incluso campos vacíos. Solo se normalizan los espacios.
	in.Site = strings.TrimSpace(in.Site)
	in.Link = strings.TrimSpace(in.Link)
	in.Username = strings.TrimSpace(in.Username)

	rec := &core.CredentialRecord{
		OwnerID:   ownerID, // siempre del token, se ignora cualquier owner del body
		Site:      in.Site,
		Link:      in.Link,
		Username:  in.Username,
		Secret:    in.Secret,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.deps.Credentials.Insert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("insert credential: %w", err)
	}

	log.Info("credential created", logger.UserID(ownerID), logger.RecordID(id))

	return &dto.CreateCredentialResponse{Success: true, ID: id}, nil
}

func (s *credentialService) Delete(ctx context.Context, ownerID, recordID string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("vault.credentials"),
		logger.Op("Delete"),
	)

	rec, err := s.deps.Credentials.FindByID(ctx, recordID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidID):
			return ErrInvalidRecordID
		case errors.Is(err, core.ErrNotFound):
			return ErrRecordNotFound
		}
		return fmt.Errorf("find credential: %w", err)
	}

	if !belongsTo(rec, ownerID) {
		// Misma respuesta que un registro inexistente.
		log.Warn("delete denied for foreign record", logger.UserID(ownerID), logger.RecordID(recordID))
		return ErrRecordNotFound
	}

	deleted, err := s.deps.Credentials.DeleteByID(ctx, recordID)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	if !deleted {
		// Alguien lo borró entre el find y el delete.
		return ErrRecordNotFound
	}

	log.Info("credential deleted", logger.UserID(ownerID), logger.RecordID(recordID))
	return nil
}

// belongsTo es el único punto donde se decide pertenencia.
func belongsTo(rec *core.CredentialRecord, ownerID string) bool {
	return rec != nil && ownerID != "" && rec.OwnerID == ownerID
}
