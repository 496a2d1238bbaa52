package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CajaMenor-api/internal/application/audit"
	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
)

// AuditHandler maneja la consulta de la bitácora (protegido, solo roles gerenciales).
type AuditHandler struct {
	uc *audit.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar bitácora de auditoría
// @Description  Entradas del tenant, más recientes primero, con nombre y rol del actor.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.AuditLogResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), companyID, page)
	if err != nil {
		return internalError(c, "audit.list", err)
	}
	return c.JSON(list)
}
