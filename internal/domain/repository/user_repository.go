package repository

import (
	"context"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos que reciben companyID aplican el predicado de tenant en la consulta.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail busca en todas las empresas (el email es único global para login).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndCompany(ctx context.Context, email, companyID string) (*entity.User, error)
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
}
