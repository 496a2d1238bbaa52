// Package report genera el reporte de gastos de la empresa en PDF.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// Límite de filas del reporte; más allá el documento deja de ser legible.
const reportMaxExpenses = 500

// ReportUseCase arma los datos del reporte de gastos y delega el render al
// generador de PDF.
type ReportUseCase struct {
	companyRepo repository.CompanyRepository
	expenseRepo repository.ExpenseRepository
	reportRepo  repository.ReportRepository
	generator   ExpenseReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportUseCase(
	companyRepo repository.CompanyRepository,
	expenseRepo repository.ExpenseRepository,
	reportRepo repository.ReportRepository,
	generator ExpenseReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		companyRepo: companyRepo,
		expenseRepo: expenseRepo,
		reportRepo:  reportRepo,
		generator:   generator,
	}
}

// DownloadExpenseReport genera el PDF del reporte de gastos del tenant.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la empresa no existe.
func (uc *ReportUseCase) DownloadExpenseReport(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	expenses, err := uc.expenseRepo.ListByCompany(ctx, companyID, reportMaxExpenses, 0)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar gastos: %w", err)
	}

	approvedTotal, pendingCount, err := uc.reportRepo.GetExpenseTotals(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: totales: %w", err)
	}
	custodyTotal, err := uc.reportRepo.GetCustodyTotal(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: total de custodias: %w", err)
	}

	now := time.Now()
	pdfBytes, err = uc.generator.GenerateExpenseReport(ctx, &ExpenseReportData{
		Company:       company,
		GeneratedAt:   now,
		Expenses:      expenses,
		ApprovedTotal: approvedTotal,
		PendingCount:  pendingCount,
		CustodyTotal:  custodyTotal,
	})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("reporte_gastos_%s.pdf", now.Format("20060102"))
	return pdfBytes, filename, nil
}
