package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProvisionCustodyRequest entrada para crear la custodia de un empleado
// (máximo una por usuario).
type ProvisionCustodyRequest struct {
	EmployeeID     string          `json:"employee_id" validate:"required,uuid"`
	InitialBalance decimal.Decimal `json:"initial_balance" validate:"required"`
}

// AdjustCustodyRequest entrada para ajustar (recargar) el saldo de custodia.
// Amount puede ser negativo, pero el resultado nunca puede quedar bajo cero.
type AdjustCustodyRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// CustodyResponse salida de una custodia, con datos del empleado.
type CustodyResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	EmployeeEmail  string          `json:"employee_email,omitempty"`
	CompanyID      string          `json:"company_id"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	LastUpdated    time.Time       `json:"last_updated"`
}
