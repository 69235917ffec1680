package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dto "github.com/dropDatabas3/passcode/internal/http/dto/auth"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
	"github.com/dropDatabas3/passcode/internal/security/password"
	"github.com/dropDatabas3/passcode/internal/store/core"
)

// LoginService verifica credenciales y emite tokens.
type LoginService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error)
}

// Errores sentinel de login.
var (
	ErrLoginValidation = errors.New("identifier and password are required")
	// ErrLoginInvalid cubre tanto usuario inexistente como password
	// incorrecta; el caller no debe poder distinguirlos.
	ErrLoginInvalid = errors.New("invalid credentials")
)

type loginService struct {
	deps Deps
}

// NewLoginService crea un nuevo service de login.
func NewLoginService(d Deps) LoginService {
	return &loginService{deps: d}
}

func (s *loginService) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.login"),
		logger.Op("Login"),
	)

	in.Identifier = strings.TrimSpace(in.Identifier)
	if in.Identifier == "" || in.Password == "" {
		return nil, ErrLoginValidation
	}

	user, err := s.deps.Users.FindByIdentifier(ctx, in.Identifier)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			// Mismo error que password incorrecta.
			return nil, ErrLoginInvalid
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !password.Verify(in.Password, user.PasswordHash) {
		log.Debug("password mismatch", logger.UserID(user.ID))
		return nil, ErrLoginInvalid
	}

	token, _, err := s.deps.Issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	log.Info("login ok", logger.UserID(user.ID), logger.Username(user.Username))

	return &dto.AuthResponse{Success: true, Token: token, User: user.Public()}, nil
}
