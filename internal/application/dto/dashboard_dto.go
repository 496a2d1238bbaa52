package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs de caja menor del tenant: totales, pendientes y las dos series del panel.
type DashboardSummaryDTO struct {
	TotalApproved       decimal.Decimal `json:"total_approved"`        // suma de gastos APPROVED
	PendingCount        int64           `json:"pending_count"`         // gastos esperando revisión
	TotalCompanyCustody decimal.Decimal `json:"total_company_custody"` // suma de saldos de custodia

	// Serie diaria de los últimos 7 días (incluye días en cero)
	SpendingSeries []DailySpendDTO `json:"spending_series"`

	// Top 5 empleados por gasto aprobado acumulado
	TopEmployees []EmployeeSpendDTO `json:"top_employees"`
}

// DailySpendDTO punto de la serie diaria de gasto aprobado.
type DailySpendDTO struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
}

// EmployeeSpendDTO total aprobado de un empleado para el ranking.
type EmployeeSpendDTO struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}
