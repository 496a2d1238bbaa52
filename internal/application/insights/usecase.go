// Package insights genera el análisis de gasto asistido por IA del panel.
package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/application/ports"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

const (
	// llmTimeout acota la llamada al modelo; la petición HTTP no debe colgarse
	// por un proveedor lento.
	llmTimeout = 10 * time.Second

	// insightsFallback se devuelve ante cualquier fallo del proveedor: clave
	// ausente, timeout, HTTP no-200 o respuesta vacía. El panel nunca recibe
	// un error por culpa de la IA.
	insightsFallback = "No fue posible generar el análisis automático en este momento. " +
		"Revise manualmente los gastos pendientes y el saldo de las custodias."

	recentExpensesForSummary = 20
)

// InsightsUseCase arma un resumen del gasto reciente del tenant y se lo pasa
// al LLM. La IA es estrictamente best-effort: si algo falla se responde 200
// con un texto fijo y source="fallback".
type InsightsUseCase struct {
	llm         ports.LLMService
	reportRepo  repository.ReportRepository
	expenseRepo repository.ExpenseRepository
	log         zerolog.Logger
}

// NewInsightsUseCase construye el caso de uso.
func NewInsightsUseCase(llm ports.LLMService, reportRepo repository.ReportRepository, expenseRepo repository.ExpenseRepository, log zerolog.Logger) *InsightsUseCase {
	return &InsightsUseCase{llm: llm, reportRepo: reportRepo, expenseRepo: expenseRepo, log: log}
}

// GetInsights devuelve el análisis del modelo o el texto de respaldo.
// Nunca devuelve error por fallos del proveedor de IA; solo los errores de
// lectura de la propia base de datos suben al handler.
func (uc *InsightsUseCase) GetInsights(ctx context.Context, companyID string) (*dto.InsightsResponse, error) {
	summary, err := uc.buildSummary(ctx, companyID)
	if err != nil {
		return nil, err
	}

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	text, err := uc.llm.GenerateExpenseInsights(llmCtx, summary)
	if err != nil || strings.TrimSpace(text) == "" {
		uc.log.Warn().Err(err).Str("company_id", companyID).Msg("IA no disponible, usando texto de respaldo")
		return &dto.InsightsResponse{Insights: insightsFallback, Source: "fallback"}, nil
	}

	return &dto.InsightsResponse{Insights: strings.TrimSpace(text), Source: "ai"}, nil
}

// buildSummary compacta el estado de gasto del tenant en texto plano para el
// prompt: totales agregados más los últimos movimientos.
func (uc *InsightsUseCase) buildSummary(ctx context.Context, companyID string) (string, error) {
	approvedTotal, pendingCount, err := uc.reportRepo.GetExpenseTotals(ctx, companyID)
	if err != nil {
		return "", err
	}
	custodyTotal, err := uc.reportRepo.GetCustodyTotal(ctx, companyID)
	if err != nil {
		return "", err
	}
	recent, err := uc.expenseRepo.ListByCompany(ctx, companyID, recentExpensesForSummary, 0)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total aprobado: %s\n", approvedTotal.StringFixed(2))
	fmt.Fprintf(&b, "Gastos pendientes de revisión: %d\n", pendingCount)
	fmt.Fprintf(&b, "Saldo total en custodias: %s\n", custodyTotal.StringFixed(2))
	b.WriteString("Movimientos recientes:\n")
	if len(recent) == 0 {
		b.WriteString("- (sin gastos registrados)\n")
	}
	for _, e := range recent {
		fmt.Fprintf(&b, "- %s | %s | %s | %s\n",
			e.CreatedAt.Format("2006-01-02"), e.EmployeeName, e.Amount.StringFixed(2), e.Status)
	}
	return b.String(), nil
}
