package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/application/report"
	"github.com/jhoicas/CajaMenor-api/internal/domain"
)

// ReportHandler maneja la descarga de reportes (protegido, solo roles gerenciales).
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadExpensePDF godoc
// @Summary      Descargar reporte de gastos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/expenses/pdf [get]
func (h *ReportHandler) DownloadExpensePDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, filename, err := h.uc.DownloadExpenseReport(c.Context(), companyID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "la empresa no existe"})
		}
		return internalError(c, "report.expenses_pdf", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
