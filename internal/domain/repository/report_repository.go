package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySpend total aprobado de un día calendario.
type DailySpend struct {
	Day   time.Time
	Total decimal.Decimal
}

// EmployeeSpend total aprobado acumulado por empleado.
type EmployeeSpend struct {
	EmployeeID string
	Name       string
	Total      decimal.Decimal
}

// ReportRepository consultas agregadas de solo lectura para el dashboard.
// Todas están acotadas por company_id y toleran cero filas (devuelven ceros
// o slices vacíos, nunca error por ausencia de datos).
type ReportRepository interface {
	// GetExpenseTotals devuelve la suma de gastos APPROVED y el conteo de PENDING.
	GetExpenseTotals(ctx context.Context, companyID string) (approvedTotal decimal.Decimal, pendingCount int64, err error)
	// GetCustodyTotal suma el saldo actual de todas las custodias del tenant.
	GetCustodyTotal(ctx context.Context, companyID string) (decimal.Decimal, error)
	// GetDailyApproved agrupa los gastos APPROVED por día calendario de creación.
	// Solo devuelve días con datos; el caller rellena los días en cero.
	GetDailyApproved(ctx context.Context, companyID string, from, to time.Time) ([]DailySpend, error)
	// GetTopEmployees agrupa gastos APPROVED por empleado, ordena descendente y corta en limit.
	GetTopEmployees(ctx context.Context, companyID string, limit int) ([]EmployeeSpend, error)
}
