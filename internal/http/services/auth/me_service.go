package auth

import (
	"context"
	"errors"
	"fmt"

	dto "github.com/dropDatabas3/passcode/internal/http/dto/auth"
	"github.com/dropDatabas3/passcode/internal/store/core"
)

// MeService resuelve el perfil del usuario autenticado.
type MeService interface {
	CurrentUser(ctx context.Context, userID string) (*dto.MeResponse, error)
}

// ErrMeNotFound: el token era válido pero el usuario ya no existe.
var ErrMeNotFound = errors.New("user not found")

type meService struct {
	deps Deps
}

// NewMeService crea un nuevo service de perfil.
func NewMeService(d Deps) MeService {
	return &meService{deps: d}
}

func (s *meService) CurrentUser(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := s.deps.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) || errors.Is(err, core.ErrInvalidID) {
			return nil, ErrMeNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &dto.MeResponse{Success: true, User: user.Public()}, nil
}
