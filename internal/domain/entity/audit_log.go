package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AuditExpenseCreated  = "EXPENSE_CREATED"
	AuditExpenseApproved = "EXPENSE_APPROVED"
	AuditExpenseRejected = "EXPENSE_REJECTED"
	AuditCustodyAdjust   = "CUSTODY_ADJUST"
)

// AuditLog entrada de la bitácora de una Company. Solo se inserta, nunca se
// actualiza ni elimina; cada acción que muta estado produce exactamente una.
type AuditLog struct {
	ID        string
	CompanyID string
	UserID    string // actor
	Action    string
	Entity    string         // "Expense" | "Custody"
	Details   map[string]any // payload estructurado, persistido como JSONB
	CreatedAt time.Time
}
