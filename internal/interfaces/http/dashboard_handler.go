package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CajaMenor-api/internal/application/analytics"
	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/application/insights"
)

// DashboardHandler maneja el panel gerencial: resumen de KPIs e insights de IA.
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	insightsUC  *insights.InsightsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase, insightsUC *insights.InsightsUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, insightsUC: insightsUC}
}

// GetSummary godoc
// @Summary      Resumen del panel de caja menor
// @Description  Total aprobado, pendientes, saldo en custodias, serie diaria
//
//	de 7 días y top 5 empleados por gasto.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.dashboardUC.GetSummary(c.Context(), companyID)
	if err != nil {
		return internalError(c, "dashboard.summary", err)
	}
	return c.JSON(out)
}

// GetInsights godoc
// @Summary      Análisis de gasto asistido por IA
// @Description  Genera un análisis en lenguaje natural del gasto reciente.
//
//	Si el proveedor de IA falla responde 200 con un texto fijo y
//	source="fallback".
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/insights [get]
func (h *DashboardHandler) GetInsights(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.insightsUC.GetInsights(c.Context(), companyID)
	if err != nil {
		return internalError(c, "dashboard.insights", err)
	}
	return c.JSON(out)
}
