package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/CajaMenor-api/internal/application/custody"
	"github.com/jhoicas/CajaMenor-api/internal/application/expense"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// Ensure TxRunner implements expense.TxRunner and custody.TxRunner.
var _ expense.TxRunner = (*TxRunner)(nil)
var _ custody.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	expenseRepo repository.ExpenseRepository,
	custodyRepo repository.CustodyRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	expenseRepo := NewExpenseRepository(tx)
	custodyRepo := NewCustodyRepository(tx)
	auditRepo := NewAuditLogRepository(tx)

	if err := fn(expenseRepo, custodyRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
