package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CajaMenor-api/internal/application/custody"
	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/domain"
)

// CustodyHandler maneja las peticiones HTTP de custodias de caja menor (protegido).
type CustodyHandler struct {
	uc *custody.CustodyUseCase
}

// NewCustodyHandler construye el handler.
func NewCustodyHandler(uc *custody.CustodyUseCase) *CustodyHandler {
	return &CustodyHandler{uc: uc}
}

// Provision godoc
// @Summary      Crear custodia de un empleado
// @Description  Máximo una custodia por empleado; saldo inicial no negativo.
// @Tags         custody
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProvisionCustodyRequest  true  "employee_id, initial_balance"
// @Success      201   {object}  dto.CustodyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/custody [post]
func (h *CustodyHandler) Provision(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ProvisionCustodyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EmployeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id es requerido"})
	}
	out, err := h.uc.Provision(c.Context(), companyID, userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "saldo inicial no puede ser negativo"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPLOYEE_NOT_FOUND", Message: "el empleado no existe en esta empresa"})
		}
		if err == domain.ErrCustodyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CUSTODY_EXISTS", Message: "el empleado ya tiene custodia asignada"})
		}
		return internalError(c, "custody.provision", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar custodias
// @Description  OWNER y ACCOUNTANT ven todas; EMPLOYEE solo la propia.
// @Tags         custody
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CustodyResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/custody [get]
func (h *CustodyHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.List(c.Context(), companyID, userID, GetRole(c))
	if err != nil {
		return internalError(c, "custody.list", err)
	}
	return c.JSON(list)
}

// Adjust godoc
// @Summary      Ajustar saldo de custodia
// @Description  Aplica un delta (positivo o negativo) al saldo del empleado.
//
//	El saldo resultante nunca puede quedar bajo cero.
//
// @Tags         custody
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        userId  path  string  true  "ID del empleado"
// @Param        body    body  dto.AdjustCustodyRequest  true  "amount: delta a aplicar"
// @Success      200     {object}  dto.CustodyResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/custody/{userId}/adjust [patch]
func (h *CustodyHandler) Adjust(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	employeeID := c.Params("userId")
	var in dto.AdjustCustodyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Adjust(c.Context(), companyID, userID, employeeID, in.Amount)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ajuste inválido: delta cero o saldo resultante negativo"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CUSTODY_NOT_FOUND", Message: "el empleado no tiene custodia en esta empresa"})
		}
		return internalError(c, "custody.adjust", err)
	}
	return c.JSON(out)
}
