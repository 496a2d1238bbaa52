package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, company_id, name, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, branch.ID, branch.CompanyID, branch.Name, branch.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene una sucursal acotada a la empresa; nil, nil si no existe.
func (r *BranchRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, created_at
		FROM branches WHERE id = $1 AND company_id = $2`
	var b entity.Branch
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(&b.ID, &b.CompanyID, &b.Name, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch by id and company: %w", err)
	}
	return &b, nil
}

// ListByCompany lista las sucursales de la empresa.
func (r *BranchRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, created_at
		FROM branches WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
