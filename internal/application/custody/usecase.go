package custody

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/authz"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD.
// Misma firma que el runner del motor de gastos: el adaptador de postgres
// satisface ambos puertos con una sola implementación.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		expenseRepo repository.ExpenseRepository,
		custodyRepo repository.CustodyRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}

// CustodyUseCase administra los saldos de caja menor: aprovisionamiento,
// listado acotado por rol y ajustes (recargas) transaccionales.
type CustodyUseCase struct {
	txRunner    TxRunner
	custodyRepo repository.CustodyRepository
	userRepo    repository.UserRepository
}

// NewCustodyUseCase construye el caso de uso.
func NewCustodyUseCase(txRunner TxRunner, custodyRepo repository.CustodyRepository, userRepo repository.UserRepository) *CustodyUseCase {
	return &CustodyUseCase{txRunner: txRunner, custodyRepo: custodyRepo, userRepo: userRepo}
}

// Provision crea el registro de custodia de un empleado (máximo uno por usuario).
// El empleado debe existir dentro de la misma empresa y el saldo inicial no
// puede ser negativo.
func (uc *CustodyUseCase) Provision(ctx context.Context, companyID, actingUserID string, in dto.ProvisionCustodyRequest) (*dto.CustodyResponse, error) {
	if in.InitialBalance.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.userRepo.GetByIDAndCompany(ctx, in.EmployeeID, companyID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.custodyRepo.GetByEmployee(ctx, in.EmployeeID, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCustodyExists
	}

	now := time.Now()
	custody := &entity.CashCustody{
		ID:             uuid.New().String(),
		EmployeeID:     in.EmployeeID,
		CompanyID:      companyID,
		CurrentBalance: in.InitialBalance,
		LastUpdated:    now,
		CreatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.ExpenseRepository,
		custodyRepo repository.CustodyRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := custodyRepo.Create(ctx, custody); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			UserID:    actingUserID,
			Action:    entity.AuditCustodyAdjust,
			Entity:    "Custody",
			Details: map[string]any{
				"targetUserId": in.EmployeeID,
				"adjustment":   in.InitialBalance.StringFixed(2),
				"newBalance":   in.InitialBalance.StringFixed(2),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	return toCustodyResponse(&repository.CustodyWithEmployee{
		CashCustody:   *custody,
		EmployeeName:  employee.Name,
		EmployeeEmail: employee.Email,
	}), nil
}

// List devuelve las custodias del tenant con los datos del empleado.
// OWNER/ACCOUNTANT ven todas; EMPLOYEE solo la propia.
func (uc *CustodyUseCase) List(ctx context.Context, companyID, userID, role string) ([]*dto.CustodyResponse, error) {
	var (
		rows []*repository.CustodyWithEmployee
		err  error
	)
	if authz.CanViewAll(role) {
		rows, err = uc.custodyRepo.ListByCompany(ctx, companyID)
	} else {
		rows, err = uc.custodyRepo.ListByEmployee(ctx, userID, companyID)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CustodyResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCustodyResponse(row))
	}
	return out, nil
}

// Adjust aplica un delta al saldo de custodia de un empleado (recarga o
// corrección manual) dentro de una transacción: bloqueo de fila, nuevo saldo,
// entrada CUSTODY_ADJUST en la bitácora. Un delta que deje el saldo bajo cero
// se rechaza con ErrInvalidInput y no muta nada.
func (uc *CustodyUseCase) Adjust(ctx context.Context, companyID, actingUserID, employeeID string, delta decimal.Decimal) (*dto.CustodyResponse, error) {
	if delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.CashCustody

	err := uc.txRunner.Run(ctx, func(
		_ repository.ExpenseRepository,
		custodyRepo repository.CustodyRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		custody, err := custodyRepo.GetByEmployeeForUpdate(ctx, employeeID, companyID)
		if err != nil {
			return err
		}
		if custody == nil {
			return domain.ErrNotFound
		}

		newBalance := custody.CurrentBalance.Add(delta)
		if newBalance.IsNegative() {
			// Invariante defensivo: un ajuste manual tampoco puede dejar saldo negativo.
			return domain.ErrInvalidInput
		}

		now := time.Now()
		if err := custodyRepo.UpdateBalance(ctx, custody.ID, companyID, newBalance, now); err != nil {
			return err
		}

		if err := auditRepo.Create(ctx, &entity.AuditLog{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			UserID:    actingUserID,
			Action:    entity.AuditCustodyAdjust,
			Entity:    "Custody",
			Details: map[string]any{
				"targetUserId": employeeID,
				"adjustment":   delta.StringFixed(2),
				"newBalance":   newBalance.StringFixed(2),
			},
			CreatedAt: now,
		}); err != nil {
			return err
		}

		custody.CurrentBalance = newBalance
		custody.LastUpdated = now
		updated = custody
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toCustodyResponse(&repository.CustodyWithEmployee{CashCustody: *updated}), nil
}

func toCustodyResponse(row *repository.CustodyWithEmployee) *dto.CustodyResponse {
	return &dto.CustodyResponse{
		ID:             row.ID,
		EmployeeID:     row.EmployeeID,
		EmployeeName:   row.EmployeeName,
		EmployeeEmail:  row.EmployeeEmail,
		CompanyID:      row.CompanyID,
		CurrentBalance: row.CurrentBalance,
		LastUpdated:    row.LastUpdated,
	}
}
