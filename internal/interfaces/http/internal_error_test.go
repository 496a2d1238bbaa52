package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CajaMenor-api/internal/application/analytics"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
	apphttp "github.com/jhoicas/CajaMenor-api/internal/interfaces/http"
)

// brokenReportRepo falla todas las consultas con un error de conexión que
// contiene detalles de infraestructura.
type brokenReportRepo struct{ err error }

func (r *brokenReportRepo) GetExpenseTotals(_ context.Context, _ string) (decimal.Decimal, int64, error) {
	return decimal.Zero, 0, r.err
}

func (r *brokenReportRepo) GetCustodyTotal(_ context.Context, _ string) (decimal.Decimal, error) {
	return decimal.Zero, r.err
}

func (r *brokenReportRepo) GetDailyApproved(_ context.Context, _ string, _, _ time.Time) ([]repository.DailySpend, error) {
	return nil, r.err
}

func (r *brokenReportRepo) GetTopEmployees(_ context.Context, _ string, _ int) ([]repository.EmployeeSpend, error) {
	return nil, r.err
}

// Un fallo de almacenamiento responde 500 con mensaje genérico: el texto del
// error (host, usuario de BD) nunca llega al cliente.
func TestInternalError_NoFiltraDetalleDeAlmacenamiento(t *testing.T) {
	repoErr := errors.New(`pgx: connect failed host="10.0.0.7" user=caja_admin`)
	uc := analytics.NewDashboardUseCase(&brokenReportRepo{err: repoErr})
	h := apphttp.NewDashboardHandler(uc, nil)

	app := fiber.New()
	app.Get("/summary", apphttp.AuthMiddleware(testJWTSecret), h.GetSummary)

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleOwner))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
	assert.Contains(t, string(body), "error interno del servidor")
	assert.NotContains(t, string(body), "10.0.0.7",
		"el detalle del error de conexión no debe viajar al cliente")
	assert.NotContains(t, string(body), "caja_admin")
}
