package expense

import (
	"context"

	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad atómica del motor de gastos:
// cambio de estado, decremento de custodia y entrada de bitácora hacen
// Commit o Rollback juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		expenseRepo repository.ExpenseRepository,
		custodyRepo repository.CustodyRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
