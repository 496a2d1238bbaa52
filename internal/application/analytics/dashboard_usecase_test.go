package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CajaMenor-api/internal/application/analytics"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// fakeReportRepo devuelve datos fijos configurables por test.
type fakeReportRepo struct {
	approved decimal.Decimal
	pending  int64
	custody  decimal.Decimal
	daily    []repository.DailySpend
	top      []repository.EmployeeSpend
}

func (r *fakeReportRepo) GetExpenseTotals(_ context.Context, _ string) (decimal.Decimal, int64, error) {
	return r.approved, r.pending, nil
}

func (r *fakeReportRepo) GetCustodyTotal(_ context.Context, _ string) (decimal.Decimal, error) {
	return r.custody, nil
}

func (r *fakeReportRepo) GetDailyApproved(_ context.Context, _ string, _, _ time.Time) ([]repository.DailySpend, error) {
	return r.daily, nil
}

func (r *fakeReportRepo) GetTopEmployees(_ context.Context, _ string, limit int) ([]repository.EmployeeSpend, error) {
	if len(r.top) > limit {
		return r.top[:limit], nil
	}
	return r.top, nil
}

// Una empresa sin movimientos produce ceros y una serie de 7 días en cero,
// nunca un error ni una serie vacía.
func TestGetSummary_SinDatosProduceCeros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeReportRepo{
		approved: decimal.Zero,
		custody:  decimal.Zero,
	})

	out, err := uc.GetSummary(context.Background(), "company-a")
	require.NoError(t, err)

	assert.True(t, out.TotalApproved.IsZero())
	assert.Zero(t, out.PendingCount)
	assert.True(t, out.TotalCompanyCustody.IsZero())
	assert.Empty(t, out.TopEmployees)

	require.Len(t, out.SpendingSeries, 7, "la serie siempre cubre 7 días")
	for _, p := range out.SpendingSeries {
		assert.True(t, p.Amount.IsZero(), "día %s debe ir en cero", p.Date)
	}
}

// Los días con datos se proyectan en su posición y el resto va en cero;
// las fechas son consecutivas terminando hoy (día calendario UTC).
func TestGetSummary_RellenaDiasSinGasto(t *testing.T) {
	today := time.Now().UTC()
	dayKey := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	uc := analytics.NewDashboardUseCase(&fakeReportRepo{
		approved: decimal.RequireFromString("350"),
		pending:  2,
		custody:  decimal.RequireFromString("9000"),
		daily: []repository.DailySpend{
			{Day: today.AddDate(0, 0, -6), Total: decimal.RequireFromString("100")},
			{Day: today, Total: decimal.RequireFromString("250")},
		},
		top: []repository.EmployeeSpend{
			{EmployeeID: "e1", Name: "John Doe", Total: decimal.RequireFromString("350")},
		},
	})

	out, err := uc.GetSummary(context.Background(), "company-a")
	require.NoError(t, err)

	assert.True(t, out.TotalApproved.Equal(decimal.RequireFromString("350")))
	assert.EqualValues(t, 2, out.PendingCount)
	assert.True(t, out.TotalCompanyCustody.Equal(decimal.RequireFromString("9000")))

	require.Len(t, out.SpendingSeries, 7)
	assert.Equal(t, dayKey(-6), out.SpendingSeries[0].Date)
	assert.Equal(t, dayKey(0), out.SpendingSeries[6].Date)
	assert.True(t, out.SpendingSeries[0].Amount.Equal(decimal.RequireFromString("100")))
	assert.True(t, out.SpendingSeries[6].Amount.Equal(decimal.RequireFromString("250")))
	for i := 1; i < 6; i++ {
		assert.True(t, out.SpendingSeries[i].Amount.IsZero(), "día intermedio %d debe ir en cero", i)
		assert.Equal(t, dayKey(i-6), out.SpendingSeries[i].Date, "las fechas deben ser consecutivas")
	}

	require.Len(t, out.TopEmployees, 1)
	assert.Equal(t, "John Doe", out.TopEmployees[0].Name)
}

// El bucket diario llega como medianoche UTC; aunque el driver lo exprese en
// otra zona (el mismo instante en Bogotá), el monto cae en el día correcto y
// no desaparece de la serie.
func TestGetSummary_SerieNoDependeDelHusoLocal(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	today := time.Now().UTC()
	bucket := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	uc := analytics.NewDashboardUseCase(&fakeReportRepo{
		approved: decimal.RequireFromString("150"),
		daily: []repository.DailySpend{
			{Day: bucket.In(bogota), Total: decimal.RequireFromString("150")},
		},
	})

	out, err := uc.GetSummary(context.Background(), "company-a")
	require.NoError(t, err)

	require.Len(t, out.SpendingSeries, 7)
	last := out.SpendingSeries[6]
	assert.Equal(t, today.Format("2006-01-02"), last.Date)
	assert.True(t, last.Amount.Equal(decimal.RequireFromString("150")),
		"el gasto del día debe aparecer en la serie, quedó %s", last.Amount)

	total := decimal.Zero
	for _, p := range out.SpendingSeries {
		total = total.Add(p.Amount)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("150")),
		"ningún monto debe perderse por diferencia de huso horario")
}

// El ranking respeta el orden descendente del repositorio y corta en 5.
func TestGetSummary_TopEmpleadosOrdenYCorte(t *testing.T) {
	top := []repository.EmployeeSpend{
		{EmployeeID: "e1", Name: "Ana", Total: decimal.RequireFromString("900")},
		{EmployeeID: "e2", Name: "Bruno", Total: decimal.RequireFromString("700")},
		{EmployeeID: "e3", Name: "Carla", Total: decimal.RequireFromString("500")},
		{EmployeeID: "e4", Name: "Diego", Total: decimal.RequireFromString("300")},
		{EmployeeID: "e5", Name: "Elena", Total: decimal.RequireFromString("200")},
		{EmployeeID: "e6", Name: "Fabio", Total: decimal.RequireFromString("100")},
	}
	uc := analytics.NewDashboardUseCase(&fakeReportRepo{top: top})

	out, err := uc.GetSummary(context.Background(), "company-a")
	require.NoError(t, err)

	require.Len(t, out.TopEmployees, 5, "el ranking corta en 5 empleados")
	assert.Equal(t, "Ana", out.TopEmployees[0].Name)
	assert.Equal(t, "Elena", out.TopEmployees[4].Name)
	for i := 1; i < len(out.TopEmployees); i++ {
		assert.True(t, out.TopEmployees[i].Total.LessThanOrEqual(out.TopEmployees[i-1].Total),
			"el ranking debe ser descendente")
	}
}
