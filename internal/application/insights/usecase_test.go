package insights_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CajaMenor-api/internal/application/insights"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

type fakeLLM struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeLLM) GenerateExpenseInsights(_ context.Context, summary string) (string, error) {
	f.prompts = append(f.prompts, summary)
	return f.text, f.err
}

type fakeReportRepo struct{}

func (fakeReportRepo) GetExpenseTotals(_ context.Context, _ string) (decimal.Decimal, int64, error) {
	return decimal.RequireFromString("350"), 2, nil
}

func (fakeReportRepo) GetCustodyTotal(_ context.Context, _ string) (decimal.Decimal, error) {
	return decimal.RequireFromString("9000"), nil
}

func (fakeReportRepo) GetDailyApproved(_ context.Context, _ string, _, _ time.Time) ([]repository.DailySpend, error) {
	return nil, nil
}

func (fakeReportRepo) GetTopEmployees(_ context.Context, _ string, _ int) ([]repository.EmployeeSpend, error) {
	return nil, nil
}

type fakeExpenseRepo struct{ rows []*repository.ExpenseWithEmployee }

func (f *fakeExpenseRepo) Create(_ context.Context, _ *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) GetByIDAndCompany(_ context.Context, _, _ string) (*entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) GetForUpdate(_ context.Context, _, _ string) (*entity.Expense, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) SetReviewed(_ context.Context, _, _, _, _ string, _ time.Time) error {
	return nil
}
func (f *fakeExpenseRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*repository.ExpenseWithEmployee, error) {
	return f.rows, nil
}
func (f *fakeExpenseRepo) ListByEmployee(_ context.Context, _, _ string, _, _ int) ([]*repository.ExpenseWithEmployee, error) {
	return f.rows, nil
}

func newUseCase(llm *fakeLLM) *insights.InsightsUseCase {
	rows := []*repository.ExpenseWithEmployee{{
		Expense: entity.Expense{
			ID: "e1", CompanyID: "company-a", EmployeeID: "emp-1",
			Amount: decimal.RequireFromString("150"), Description: "taxi",
			Status: entity.ExpenseStatusApproved, CreatedAt: time.Now(),
		},
		EmployeeName: "John Doe",
	}}
	return insights.NewInsightsUseCase(llm, fakeReportRepo{}, &fakeExpenseRepo{rows: rows}, zerolog.Nop())
}

// Con el modelo disponible se devuelve su texto y source="ai".
func TestGetInsights_ModeloDisponible(t *testing.T) {
	llm := &fakeLLM{text: "El gasto se concentra en transporte. Revise la custodia de John."}
	uc := newUseCase(llm)

	out, err := uc.GetInsights(context.Background(), "company-a")
	require.NoError(t, err)

	assert.Equal(t, "ai", out.Source)
	assert.Equal(t, llm.text, out.Insights)

	// El prompt lleva los totales y los movimientos recientes
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "350.00")
	assert.Contains(t, llm.prompts[0], "John Doe")
}

// Cualquier fallo del proveedor degrada a texto fijo con source="fallback",
// nunca a un error HTTP.
func TestGetInsights_FalloDelProveedorUsaRespaldo(t *testing.T) {
	llm := &fakeLLM{err: errors.New("HTTP 503")}
	uc := newUseCase(llm)

	out, err := uc.GetInsights(context.Background(), "company-a")
	require.NoError(t, err, "el fallo de IA no debe subir como error")

	assert.Equal(t, "fallback", out.Source)
	assert.NotEmpty(t, out.Insights)
	assert.True(t, strings.Contains(out.Insights, "No fue posible"), "debe ser el texto fijo de respaldo")
}

// Una respuesta vacía del modelo también cuenta como fallo.
func TestGetInsights_RespuestaVaciaUsaRespaldo(t *testing.T) {
	llm := &fakeLLM{text: "   "}
	uc := newUseCase(llm)

	out, err := uc.GetInsights(context.Background(), "company-a")
	require.NoError(t, err)
	assert.Equal(t, "fallback", out.Source)
}
