package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un gasto. PENDING es el estado inicial;
// APPROVED y REJECTED son terminales: no existe transición que salga de ellos.
const (
	ExpenseStatusPending  = "PENDING"
	ExpenseStatusApproved = "APPROVED"
	ExpenseStatusRejected = "REJECTED"
)

// TerminalExpenseStatus indica si el estado es un destino válido de revisión.
func TerminalExpenseStatus(status string) bool {
	return status == ExpenseStatusApproved || status == ExpenseStatusRejected
}

// Expense un gasto de caja menor reportado por un empleado.
type Expense struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	BranchID    *string
	Amount      decimal.Decimal
	Description string
	Status      string  // PENDING, APPROVED, REJECTED
	ReviewedBy  *string // ID del revisor; solo con estado terminal
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Reviewable indica si el gasto admite una revisión (solo desde PENDING).
func (e *Expense) Reviewable() bool {
	return e.Status == ExpenseStatusPending
}
