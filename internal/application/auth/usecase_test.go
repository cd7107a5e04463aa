package auth_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriansp/epc-catalog-api/internal/application/auth"
	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
	"github.com/andriansp/epc-catalog-api/internal/domain/entity"
	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
	pkgjwt "github.com/andriansp/epc-catalog-api/pkg/jwt"
)

// fakeUserRepo almacén en memoria con email único, como la tabla users.
type fakeUserRepo struct {
	users []*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = uuid.NewString()
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && !u.IsDelete {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id && !u.IsDelete {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthUC() (*fakeUserRepo, *auth.UseCase) {
	repo := &fakeUserRepo{}
	uc := auth.NewUseCase(repo, auth.Config{
		Secret:            "test-secret",
		Issuer:            "epc-catalog-test",
		ExpirationMinutes: 60,
	})
	return repo, uc
}

func TestRegister_HasheaPasswordYNormalizaEmail(t *testing.T) {
	repo, uc := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Andrian",
		Email:    "  Andrian@Example.COM ",
		Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, "andrian@example.com", out.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, entity.RoleOperator, out.Role, "sin rol explícito se asigna operator")
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "secreto123", repo.users[0].PasswordHash,
		"la contraseña nunca se guarda en claro")
}

func TestRegister_RolAdminExplicito(t *testing.T) {
	_, uc := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "secreto123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestRegister_RolDesconocidoCaeAOperator(t *testing.T) {
	_, uc := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "x@example.com",
		Password: "secreto123",
		Role:     "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperator, out.Role)
}

func TestRegister_CamposVacios(t *testing.T) {
	_, uc := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "x@example.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	_, uc := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Email: "dup@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "DUP@example.com", Password: "otro456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"el mismo email con distinta capitalización es duplicado")
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	_, uc := newAuthUC()
	reg, err := uc.Register(dto.RegisterRequest{
		Email:    "login@example.com",
		Password: "secreto123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "Login@Example.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID, "el token lleva el id del usuario como actor")
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	_, uc := newAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "u@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "u@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "password incorrecto no revela detalle")

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente no revela detalle")
}

func TestLogin_EmailConEspacios(t *testing.T) {
	_, uc := newAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "pad@example.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "  pad@example.com  ", Password: "secreto123"})
	require.NoError(t, err)
	assert.False(t, strings.Contains(out.User.Email, " "))
}
