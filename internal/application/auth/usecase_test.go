package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/CajaMenor-api/internal/application/auth"
	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/CajaMenor-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // key: email
	err   error                   // si está seteado, todas las lecturas fallan
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(_ context.Context, email, companyID string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u := r.users[email]
	if u == nil || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByIDAndCompany(_ context.Context, id, companyID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.companies[id], nil
}

const (
	companyActive   = "company-active"
	companyInactive = "company-inactive"
	testPassword    = "password123"
)

func newFixture(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	users := &fakeUserRepo{users: map[string]*entity.User{
		"owner@a.com": {
			ID: "user-1", CompanyID: companyActive, Email: "owner@a.com",
			PasswordHash: string(hash), Name: "Ahmed Owner", Role: entity.RoleOwner,
			Status: "active", CreatedAt: now, UpdatedAt: now,
		},
		"emp@suspendida.com": {
			ID: "user-2", CompanyID: companyInactive, Email: "emp@suspendida.com",
			PasswordHash: string(hash), Name: "Empleado", Role: entity.RoleEmployee,
			Status: "active", CreatedAt: now, UpdatedAt: now,
		},
	}}
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		companyActive:   {ID: companyActive, Name: "Activa SA", SubscriptionStatus: entity.SubscriptionActive},
		companyInactive: {ID: companyInactive, Name: "Suspendida SA", SubscriptionStatus: entity.SubscriptionInactive},
	}}

	uc := auth.NewAuthUseCase(users, companies, auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "caja-menor-test",
	})
	return uc, users
}

// Login correcto devuelve un token con user, company y role dentro.
func TestLogin_TokenLlevaLosClaims(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "owner@a.com", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, companyID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, companyActive, companyID)
	assert.Equal(t, entity.RoleOwner, role)

	assert.Equal(t, "owner@a.com", out.User.Email)
}

// Password incorrecto → credenciales inválidas, sin distinguir del email inexistente.
func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "owner@a.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "noexiste@a.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Suscripción no ACTIVE bloquea el login de toda la empresa.
func TestLogin_EmpresaSuspendida(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "emp@suspendida.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Usuario inactivo tampoco entra aunque la empresa esté activa.
func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, users := newFixture(t)
	users.users["owner@a.com"].Status = "inactive"

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "owner@a.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Registro sin rol explícito queda como EMPLOYEE y nunca expone el hash.
func TestRegister_RolPorDefectoEmployee(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "nuevo@a.com", Password: "clave-segura", CompanyID: companyActive, Name: "Nuevo",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.Role)
	assert.Equal(t, "active", out.Status)
}

// Email repetido dentro de la misma empresa se rechaza.
func TestRegister_EmailDuplicadoEnLaEmpresa(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "owner@a.com", Password: "clave-segura", CompanyID: companyActive,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Un fallo al consultar el email se propaga: el registro no debe seguir
// como si el email estuviera libre.
func TestRegister_ErrorDeLecturaSePropaga(t *testing.T) {
	uc, users := newFixture(t)
	users.err = errors.New("conexión perdida")

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "nuevo@a.com", Password: "clave-segura", CompanyID: companyActive,
	})
	require.ErrorIs(t, err, users.err)
}

// Rol fuera del conjunto cerrado se rechaza.
func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "otro@a.com", Password: "clave-segura", CompanyID: companyActive, Role: "ADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
