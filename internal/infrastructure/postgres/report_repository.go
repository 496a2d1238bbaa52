package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para el dashboard y los
// reportes. Los agregados usan COALESCE: cero filas produce ceros, no NULL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetExpenseTotals devuelve la suma de gastos APPROVED y el conteo de PENDING.
func (r *ReportRepo) GetExpenseTotals(ctx context.Context, companyID string) (decimal.Decimal, int64, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = $2), 0),
			COUNT(*) FILTER (WHERE status = $3)
		FROM expenses
		WHERE company_id = $1`
	var approved decimal.Decimal
	var pending int64
	err := r.q.QueryRow(ctx, query, companyID, entity.ExpenseStatusApproved, entity.ExpenseStatusPending).
		Scan(&approved, &pending)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("expense totals: %w", err)
	}
	return approved, pending, nil
}

// GetCustodyTotal suma el saldo actual de todas las custodias del tenant.
func (r *ReportRepo) GetCustodyTotal(ctx context.Context, companyID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(current_balance), 0) FROM cash_custody WHERE company_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("custody total: %w", err)
	}
	return total, nil
}

// GetDailyApproved agrupa los gastos APPROVED por día calendario UTC de
// creación dentro de la ventana. Solo devuelve días con datos. El bucket se
// calcula en UTC explícito para no depender del TimeZone de la sesión.
func (r *ReportRepo) GetDailyApproved(ctx context.Context, companyID string, from, to time.Time) ([]repository.DailySpend, error) {
	query := `
		SELECT (created_at AT TIME ZONE 'UTC')::date AS day, SUM(amount)
		FROM expenses
		WHERE company_id = $1 AND status = $2 AND created_at BETWEEN $3 AND $4
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(ctx, query, companyID, entity.ExpenseStatusApproved, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily approved: %w", err)
	}
	defer rows.Close()
	var list []repository.DailySpend
	for rows.Next() {
		var d repository.DailySpend
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, fmt.Errorf("scan daily approved: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetTopEmployees agrupa los gastos APPROVED por empleado, ordena descendente
// y corta en limit.
func (r *ReportRepo) GetTopEmployees(ctx context.Context, companyID string, limit int) ([]repository.EmployeeSpend, error) {
	query := `
		SELECT e.employee_id, u.name, SUM(e.amount) AS total
		FROM expenses e
		JOIN users u ON u.id = e.employee_id
		WHERE e.company_id = $1 AND e.status = $2
		GROUP BY e.employee_id, u.name
		ORDER BY total DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, companyID, entity.ExpenseStatusApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("top employees: %w", err)
	}
	defer rows.Close()
	var list []repository.EmployeeSpend
	for rows.Next() {
		var e repository.EmployeeSpend
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.Total); err != nil {
			return nil, fmt.Errorf("scan top employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
