package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
	"github.com/jhoicas/CajaMenor-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
// Los claims se derivan del token verificado en cada request; aquí solo se emiten.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe en esa company.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmailAndCompany(ctx, in.Email, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound // empresa no existe
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	var branchID *string
	if in.BranchID != "" {
		branchID = &in.BranchID
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    in.CompanyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		BranchID:     branchID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT con {user, company, role} y retorna token + usuario.
// Empresas con suscripción no ACTIVE y usuarios inactivos no pueden iniciar sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.SubscriptionStatus != entity.SubscriptionActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse proyecta la entidad al DTO público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		BranchID:  u.BranchID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
