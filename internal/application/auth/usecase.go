// Package auth implementa registro y login de usuarios con emisión de JWT.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
	"github.com/andriansp/epc-catalog-api/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	Secret            string
	Issuer            string
	ExpirationMinutes int
}

// UseCase operaciones de autenticación.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Register crea un usuario con la contraseña hasheada. El rol por defecto es
// operator; el email se normaliza a minúsculas.
func (uc *UseCase) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := req.Role
	if role != entity.RoleAdmin {
		role = entity.RoleOperator
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.users.Create(u); err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// Login valida credenciales y emite un token firmado.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Role, uc.cfg.Issuer, uc.cfg.ExpirationMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	}, nil
}
