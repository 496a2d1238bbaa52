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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, subscription_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.SubscriptionStatus, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; nil, nil si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, name, subscription_status, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.SubscriptionStatus, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return &c, nil
}
