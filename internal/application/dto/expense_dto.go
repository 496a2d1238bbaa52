package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto de caja menor.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required,min=1,max=500"`
	BranchID    string          `json:"branch_id" validate:"omitempty,uuid"`
}

// ReviewExpenseRequest entrada para aprobar o rechazar un gasto PENDING.
type ReviewExpenseRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// ExpenseResponse salida de un gasto, con datos de presentación del empleado.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	EmployeeEmail string          `json:"employee_email,omitempty"`
	BranchID      *string         `json:"branch_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	ReviewedBy    *string         `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
