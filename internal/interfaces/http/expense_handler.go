package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/application/expense"
	"github.com/jhoicas/CajaMenor-api/internal/domain"
)

// ExpenseHandler maneja las peticiones HTTP del ciclo de vida de gastos (protegido).
type ExpenseHandler struct {
	uc *expense.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expense.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto de caja menor
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "amount, description, branch_id opcional"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), companyID, userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "monto debe ser positivo y descripción no vacía"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BRANCH_NOT_FOUND", Message: "la sucursal no existe en esta empresa"})
		}
		return internalError(c, "expense.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos
// @Description  OWNER y ACCOUNTANT ven toda la empresa; EMPLOYEE solo los propios.
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.ExpenseResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	list, err := h.uc.List(c.Context(), companyID, userID, GetRole(c), page)
	if err != nil {
		return internalError(c, "expense.list", err)
	}
	return c.JSON(list)
}

// Review godoc
// @Summary      Aprobar o rechazar un gasto
// @Description  Solo gastos PENDING. Aprobar descuenta el monto de la custodia
//
//	del empleado en la misma transacción; sin saldo suficiente la
//	operación se revierte completa.
//
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.ReviewExpenseRequest  true  "status: APPROVED o REJECTED"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id}/status [patch]
func (h *ExpenseHandler) Review(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	expenseID := c.Params("id")
	var in dto.ReviewExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Review(c.Context(), expenseID, companyID, userID, in.Status)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser APPROVED o REJECTED"})
		}
		if err == domain.ErrInvalidTransition {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "gasto no encontrado o ya procesado"})
		}
		if err == domain.ErrInsufficientFunds {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_FUNDS", Message: "saldo de custodia insuficiente para aprobar el gasto"})
		}
		return internalError(c, "expense.review", err)
	}
	return c.JSON(out)
}
