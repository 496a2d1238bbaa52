package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

var _ repository.CustodyRepository = (*CustodyRepo)(nil)

// CustodyRepo implementación del puerto CustodyRepository sobre PostgreSQL
// (usable con pool o tx).
type CustodyRepo struct {
	q Querier
}

// NewCustodyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustodyRepository(q Querier) *CustodyRepo {
	return &CustodyRepo{q: q}
}

// Create persiste una nueva custodia. El UNIQUE sobre employee_id garantiza
// máximo una por empleado.
func (r *CustodyRepo) Create(ctx context.Context, custody *entity.CashCustody) error {
	query := `
		INSERT INTO cash_custody (id, employee_id, company_id, current_balance, last_updated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		custody.ID, custody.EmployeeID, custody.CompanyID,
		custody.CurrentBalance, custody.LastUpdated, custody.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCustodyExists
		}
		return fmt.Errorf("insert custody: %w", err)
	}
	return nil
}

// GetByEmployee obtiene la custodia de un empleado; nil, nil si no tiene.
func (r *CustodyRepo) GetByEmployee(ctx context.Context, employeeID, companyID string) (*entity.CashCustody, error) {
	query := `
		SELECT id, employee_id, company_id, current_balance, last_updated, created_at
		FROM cash_custody WHERE employee_id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, employeeID, companyID), "get custody by employee")
}

// GetByEmployeeForUpdate obtiene la custodia y bloquea la fila (SELECT ... FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *CustodyRepo) GetByEmployeeForUpdate(ctx context.Context, employeeID, companyID string) (*entity.CashCustody, error) {
	query := `
		SELECT id, employee_id, company_id, current_balance, last_updated, created_at
		FROM cash_custody WHERE employee_id = $1 AND company_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, employeeID, companyID), "get custody for update")
}

// UpdateBalance escribe el nuevo saldo y la marca de tiempo. El predicado
// company_id acompaña al id aunque la fila venga de un FOR UPDATE acotado.
func (r *CustodyRepo) UpdateBalance(ctx context.Context, id, companyID string, newBalance decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE cash_custody SET current_balance = $3, last_updated = $4 WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, id, companyID, newBalance, updatedAt)
	if err != nil {
		return fmt.Errorf("update custody balance: %w", err)
	}
	return nil
}

// ListByCompany lista las custodias del tenant con datos del empleado.
func (r *CustodyRepo) ListByCompany(ctx context.Context, companyID string) ([]*repository.CustodyWithEmployee, error) {
	query := `
		SELECT c.id, c.employee_id, c.company_id, c.current_balance, c.last_updated, c.created_at,
		       u.name, u.email
		FROM cash_custody c
		JOIN users u ON u.id = c.employee_id
		WHERE c.company_id = $1
		ORDER BY u.name`
	return r.list(ctx, query, companyID)
}

// ListByEmployee lista solo la custodia propia del empleado (cero o una filas).
func (r *CustodyRepo) ListByEmployee(ctx context.Context, employeeID, companyID string) ([]*repository.CustodyWithEmployee, error) {
	query := `
		SELECT c.id, c.employee_id, c.company_id, c.current_balance, c.last_updated, c.created_at,
		       u.name, u.email
		FROM cash_custody c
		JOIN users u ON u.id = c.employee_id
		WHERE c.employee_id = $1 AND c.company_id = $2`
	return r.list(ctx, query, employeeID, companyID)
}

func (r *CustodyRepo) list(ctx context.Context, query string, args ...any) ([]*repository.CustodyWithEmployee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list custodies: %w", err)
	}
	defer rows.Close()
	var list []*repository.CustodyWithEmployee
	for rows.Next() {
		var c repository.CustodyWithEmployee
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.CompanyID, &c.CurrentBalance, &c.LastUpdated, &c.CreatedAt,
			&c.EmployeeName, &c.EmployeeEmail,
		); err != nil {
			return nil, fmt.Errorf("scan custody: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CustodyRepo) scanOne(row pgx.Row, op string) (*entity.CashCustody, error) {
	var c entity.CashCustody
	err := row.Scan(&c.ID, &c.EmployeeID, &c.CompanyID, &c.CurrentBalance, &c.LastUpdated, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
