package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// ExpenseReportData todo lo que el generador necesita para armar el documento.
type ExpenseReportData struct {
	Company       *entity.Company
	GeneratedAt   time.Time
	Expenses      []*repository.ExpenseWithEmployee
	ApprovedTotal decimal.Decimal
	PendingCount  int64
	CustodyTotal  decimal.Decimal
}

// ExpenseReportPDFGenerator puerto de salida hacia el motor de PDF.
// Cualquier adaptador (Maroto, mock) debe implementar esta interfaz.
type ExpenseReportPDFGenerator interface {
	GenerateExpenseReport(ctx context.Context, data *ExpenseReportData) ([]byte, error)
}
