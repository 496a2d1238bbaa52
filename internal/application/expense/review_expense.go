package expense

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// Review aprueba o rechaza un gasto PENDING dentro de una única transacción.
//
// Secuencia (todo con Commit/Rollback conjunto, TxRunner.Run lo garantiza):
//  1. SELECT ... FOR UPDATE del gasto, acotado a companyID. La fila queda
//     bloqueada: de dos revisiones concurrentes solo la primera ve PENDING.
//  2. Si el gasto no existe en la empresa o ya salió de PENDING →
//     ErrInvalidTransition (ambos casos se colapsan hacia el caller).
//  3. REJECTED: estampar estado, revisor y fecha. La custodia no se toca.
//  4. APPROVED: SELECT ... FOR UPDATE de la custodia del empleado (mismo
//     companyID). Sin custodia o saldo < monto → ErrInsufficientFunds y
//     rollback total: el gasto sigue PENDING. Si alcanza, decrementar saldo
//     y estampar lastUpdated, luego estampar el gasto.
//  5. Exactamente una entrada de bitácora EXPENSE_APPROVED/EXPENSE_REJECTED
//     con {expenseId, amount}. Si la bitácora falla, falla toda la revisión.
func (uc *ExpenseUseCase) Review(ctx context.Context, expenseID, companyID, reviewerID, newStatus string) (*dto.ExpenseResponse, error) {
	if !entity.TerminalExpenseStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}

	var reviewed *entity.Expense

	err := uc.txRunner.Run(ctx, func(
		expenseRepo repository.ExpenseRepository,
		custodyRepo repository.CustodyRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		exp, err := expenseRepo.GetForUpdate(ctx, expenseID, companyID)
		if err != nil {
			return err
		}
		if exp == nil || !exp.Reviewable() {
			// No encontrado y ya procesado son indistinguibles para el caller.
			return domain.ErrInvalidTransition
		}

		now := time.Now()

		if newStatus == entity.ExpenseStatusApproved {
			custody, err := custodyRepo.GetByEmployeeForUpdate(ctx, exp.EmployeeID, companyID)
			if err != nil {
				return err
			}
			if custody == nil || !custody.CanCover(exp.Amount) {
				return domain.ErrInsufficientFunds
			}
			newBalance := custody.CurrentBalance.Sub(exp.Amount)
			if err := custodyRepo.UpdateBalance(ctx, custody.ID, companyID, newBalance, now); err != nil {
				return err
			}
		}

		if err := expenseRepo.SetReviewed(ctx, exp.ID, companyID, newStatus, reviewerID, now); err != nil {
			return err
		}

		action := entity.AuditExpenseRejected
		if newStatus == entity.ExpenseStatusApproved {
			action = entity.AuditExpenseApproved
		}
		if err := auditRepo.Create(ctx, &entity.AuditLog{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			UserID:    reviewerID,
			Action:    action,
			Entity:    "Expense",
			Details: map[string]any{
				"expenseId": exp.ID,
				"amount":    auditDetailAmount(exp.Amount),
			},
			CreatedAt: now,
		}); err != nil {
			return err
		}

		exp.Status = newStatus
		exp.ReviewedBy = &reviewerID
		exp.ReviewedAt = &now
		exp.UpdatedAt = now
		reviewed = exp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toExpenseResponse(&repository.ExpenseWithEmployee{Expense: *reviewed}), nil
}
