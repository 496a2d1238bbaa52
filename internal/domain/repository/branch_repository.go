package repository

import (
	"context"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Branch, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Branch, error)
}
