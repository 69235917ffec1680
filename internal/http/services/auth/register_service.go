package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dto "github.com/dropDatabas3/passcode/internal/http/dto/auth"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
	"github.com/dropDatabas3/passcode/internal/security/password"
	"github.com/dropDatabas3/passcode/internal/store/core"
)

// RegisterService da de alta usuarios y emite el token inicial.
type RegisterService interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error)
}

// Errores sentinel de registro; el controller los mapea a HTTP.
var (
	ErrRegisterValidation = errors.New("invalid registration input")
	ErrRegisterConflict   = errors.New("username, email or phone already registered")
)

type registerService struct {
	deps Deps
}

// NewRegisterService crea un nuevo service de registro.
func NewRegisterService(d Deps) RegisterService {
	return &registerService{deps: d}
}

func (s *registerService) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("auth.register"),
		logger.Op("Register"),
	)

	// Normalizar
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validateRegister(in); err != nil {
		return nil, err
	}

	hash, err := password.Hash(password.Default, in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &core.User{
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	// Los índices únicos son la autoridad: el chequeo de duplicados vive en
	// el Insert, no en un read-then-write con carrera.
	id, err := s.deps.Users.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, core.ErrConflict) {
			return nil, ErrRegisterConflict
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	user.ID = id

	token, _, err := s.deps.Issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	log.Info("user registered", logger.UserID(user.ID), logger.Username(user.Username))

	return &dto.AuthResponse{Success: true, Token: token, User: user.Public()}, nil
}

func validateRegister(in dto.RegisterRequest) error {
	// Username: solo se exige que no esté vacío. Cualquier política de
	// largo o caracteres es problema del cliente, no de este servicio.
	if in.Username == "" || in.Password == "" {
		return fmt.Errorf("%w: username y password son obligatorios", ErrRegisterValidation)
	}
	if in.Email == "" && in.Phone == "" {
		return fmt.Errorf("%w: se requiere email o phone", ErrRegisterValidation)
	}
	if in.Email != "" && !validEmail(in.Email) {
		return fmt.Errorf("%w: email inválido", ErrRegisterValidation)
	}
	if in.Phone != "" && !validPhone(in.Phone) {
		return fmt.Errorf("%w: phone inválido", ErrRegisterValidation)
	}
	return nil
}
