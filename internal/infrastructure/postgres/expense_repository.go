package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL
// (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, company_id, employee_id, branch_id, amount, description, status, reviewed_by, reviewed_at, created_at, updated_at`

// Create persiste un nuevo gasto (estado PENDING).
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, company_id, employee_id, branch_id, amount, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		expense.ID, expense.CompanyID, expense.EmployeeID, expense.BranchID,
		expense.Amount, expense.Description, expense.Status, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene un gasto acotado a la empresa; nil, nil si no existe.
func (r *ExpenseRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, id, companyID), "get expense by id")
}

// GetForUpdate obtiene el gasto y bloquea la fila (SELECT ... FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ExpenseRepo) GetForUpdate(ctx context.Context, id, companyID string) (*entity.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses WHERE id = $1 AND company_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id, companyID), "get expense for update")
}

// SetReviewed estampa estado terminal, revisor y fecha de revisión. El
// predicado company_id acompaña al id aunque la fila venga de un FOR UPDATE
// acotado.
func (r *ExpenseRepo) SetReviewed(ctx context.Context, id, companyID, status, reviewerID string, reviewedAt time.Time) error {
	query := `
		UPDATE expenses
		SET status = $3, reviewed_by = $4, reviewed_at = $5, updated_at = $5
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, id, companyID, status, reviewerID, reviewedAt)
	if err != nil {
		return fmt.Errorf("set expense reviewed: %w", err)
	}
	return nil
}

// ListByCompany lista los gastos del tenant, más recientes primero, con datos del empleado.
func (r *ExpenseRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*repository.ExpenseWithEmployee, error) {
	query := `
		SELECT e.id, e.company_id, e.employee_id, e.branch_id, e.amount, e.description,
		       e.status, e.reviewed_by, e.reviewed_at, e.created_at, e.updated_at,
		       u.name, u.email
		FROM expenses e
		JOIN users u ON u.id = e.employee_id
		WHERE e.company_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3`
	return r.list(ctx, query, companyID, limit, offset)
}

// ListByEmployee lista los gastos de un empleado dentro de su empresa.
func (r *ExpenseRepo) ListByEmployee(ctx context.Context, employeeID, companyID string, limit, offset int) ([]*repository.ExpenseWithEmployee, error) {
	query := `
		SELECT e.id, e.company_id, e.employee_id, e.branch_id, e.amount, e.description,
		       e.status, e.reviewed_by, e.reviewed_at, e.created_at, e.updated_at,
		       u.name, u.email
		FROM expenses e
		JOIN users u ON u.id = e.employee_id
		WHERE e.employee_id = $1 AND e.company_id = $2
		ORDER BY e.created_at DESC
		LIMIT $3 OFFSET $4`
	return r.list(ctx, query, employeeID, companyID, limit, offset)
}

func (r *ExpenseRepo) list(ctx context.Context, query string, args ...any) ([]*repository.ExpenseWithEmployee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*repository.ExpenseWithEmployee
	for rows.Next() {
		var e repository.ExpenseWithEmployee
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.EmployeeID, &e.BranchID, &e.Amount, &e.Description,
			&e.Status, &e.ReviewedBy, &e.ReviewedAt, &e.CreatedAt, &e.UpdatedAt,
			&e.EmployeeName, &e.EmployeeEmail,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *ExpenseRepo) scanOne(row pgx.Row, op string) (*entity.Expense, error) {
	var e entity.Expense
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeID, &e.BranchID, &e.Amount, &e.Description,
		&e.Status, &e.ReviewedBy, &e.ReviewedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}
