// Package analytics contiene los casos de uso de solo lectura del panel de
// caja menor: totales, pendientes, serie diaria y ranking de empleados.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

const (
	dashboardTopEmployees = 5 // empleados en el ranking del panel
	dashboardSeriesDays   = 7 // días de la serie de gasto diario
)

// DashboardUseCase genera el resumen del panel para una empresa.
//
// Fuente de datos: ReportRepository (consultas read-only acotadas por tenant).
// Sin efectos secundarios; cero filas produce ceros y series vacías.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el DashboardSummaryDTO de la empresa indicada.
//
// Cuatro llamadas en paralelo:
//  1. GetExpenseTotals          → TotalApproved + PendingCount
//  2. GetCustodyTotal           → TotalCompanyCustody
//  3. GetDailyApproved(7 días)  → SpendingSeries
//  4. GetTopEmployees(top 5)    → TopEmployees
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryDTO, error) {
	// Ventana de la serie: hoy y los 6 días anteriores, en días calendario UTC.
	// La consulta agrupa por día UTC; las claves de la serie se generan igual
	// para que ambos lados coincidan sin importar el huso del proceso.
	now := time.Now().UTC()
	seriesEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		Add(24*time.Hour - time.Nanosecond)
	seriesStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(dashboardSeriesDays - 1))

	type totalsResult struct {
		approved decimal.Decimal
		pending  int64
		err      error
	}
	type custodyResult struct {
		total decimal.Decimal
		err   error
	}
	type seriesResult struct {
		days []repository.DailySpend
		err  error
	}
	type topResult struct {
		employees []repository.EmployeeSpend
		err       error
	}

	totalsCh := make(chan totalsResult, 1)
	custodyCh := make(chan custodyResult, 1)
	seriesCh := make(chan seriesResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		approved, pending, err := uc.reportRepo.GetExpenseTotals(ctx, companyID)
		totalsCh <- totalsResult{approved, pending, err}
	}()
	go func() {
		total, err := uc.reportRepo.GetCustodyTotal(ctx, companyID)
		custodyCh <- custodyResult{total, err}
	}()
	go func() {
		days, err := uc.reportRepo.GetDailyApproved(ctx, companyID, seriesStart, seriesEnd)
		seriesCh <- seriesResult{days, err}
	}()
	go func() {
		employees, err := uc.reportRepo.GetTopEmployees(ctx, companyID, dashboardTopEmployees)
		topCh <- topResult{employees, err}
	}()

	totals := <-totalsCh
	custody := <-custodyCh
	series := <-seriesCh
	top := <-topCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de gastos: %w", totals.err)
	}
	if custody.err != nil {
		return nil, fmt.Errorf("dashboard: total de custodias: %w", custody.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", series.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top empleados: %w", top.err)
	}

	topEmployees := make([]dto.EmployeeSpendDTO, 0, len(top.employees))
	for _, e := range top.employees {
		topEmployees = append(topEmployees, dto.EmployeeSpendDTO{Name: e.Name, Total: e.Total})
	}

	return &dto.DashboardSummaryDTO{
		TotalApproved:       totals.approved,
		PendingCount:        totals.pending,
		TotalCompanyCustody: custody.total,
		SpendingSeries:      fillDailySeries(seriesStart, dashboardSeriesDays, series.days),
		TopEmployees:        topEmployees,
	}, nil
}

// fillDailySeries proyecta los días con datos sobre la ventana completa,
// rellenando en cero los días sin gastos aprobados. Los buckets y las claves
// se comparan como fecha UTC: el driver puede entregar el instante en
// cualquier zona.
func fillDailySeries(start time.Time, days int, data []repository.DailySpend) []dto.DailySpendDTO {
	byDay := make(map[string]decimal.Decimal, len(data))
	for _, d := range data {
		byDay[d.Day.UTC().Format("2006-01-02")] = d.Total
	}

	series := make([]dto.DailySpendDTO, 0, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format("2006-01-02")
		amount, ok := byDay[key]
		if !ok {
			amount = decimal.Zero
		}
		series = append(series, dto.DailySpendDTO{Date: key, Amount: amount})
	}
	return series
}
