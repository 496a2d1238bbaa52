package expense

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

// ExpenseUseCase motor del ciclo de vida de gastos: creación (PENDING),
// listado acotado por rol y revisión transaccional (APPROVED/REJECTED).
type ExpenseUseCase struct {
	txRunner    TxRunner
	expenseRepo repository.ExpenseRepository
	branchRepo  repository.BranchRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(txRunner TxRunner, expenseRepo repository.ExpenseRepository, branchRepo repository.BranchRepository) *ExpenseUseCase {
	return &ExpenseUseCase{txRunner: txRunner, expenseRepo: expenseRepo, branchRepo: branchRepo}
}

// Create registra un gasto en estado PENDING a nombre del empleado autenticado.
// Valida monto positivo, descripción no vacía y que la sucursal (si viene)
// pertenezca a la misma empresa. No toca la custodia. El gasto y su entrada
// EXPENSE_CREATED en la bitácora se insertan en la misma transacción.
func (uc *ExpenseUseCase) Create(ctx context.Context, companyID, employeeID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}

	var branchID *string
	if in.BranchID != "" {
		branch, err := uc.branchRepo.GetByIDAndCompany(ctx, in.BranchID, companyID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, domain.ErrNotFound
		}
		branchID = &in.BranchID
	}

	now := time.Now()
	exp := &entity.Expense{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		BranchID:    branchID,
		Amount:      in.Amount,
		Description: in.Description,
		Status:      entity.ExpenseStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		expenseRepo repository.ExpenseRepository,
		_ repository.CustodyRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := expenseRepo.Create(ctx, exp); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			UserID:    employeeID,
			Action:    entity.AuditExpenseCreated,
			Entity:    "Expense",
			Details: map[string]any{
				"expenseId": exp.ID,
				"amount":    auditDetailAmount(exp.Amount),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	return toExpenseResponse(&repository.ExpenseWithEmployee{Expense: *exp}), nil
}

// List devuelve los gastos del tenant, más recientes primero.
// OWNER/ACCOUNTANT ven toda la empresa; EMPLOYEE solo los propios.
// El alcance se decide aquí con la tabla de capacidades, nunca con input del cliente.
func (uc *ExpenseUseCase) List(ctx context.Context, companyID, userID, role string, page dto.PageRequest) ([]*dto.ExpenseResponse, error) {
	page.DefaultPage()

	var (
		rows []*repository.ExpenseWithEmployee
		err  error
	)
	if authz.CanViewAll(role) {
		rows, err = uc.expenseRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	} else {
		rows, err = uc.expenseRepo.ListByEmployee(ctx, userID, companyID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ExpenseResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toExpenseResponse(row))
	}
	return out, nil
}

func toExpenseResponse(row *repository.ExpenseWithEmployee) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            row.ID,
		CompanyID:     row.CompanyID,
		EmployeeID:    row.EmployeeID,
		EmployeeName:  row.EmployeeName,
		EmployeeEmail: row.EmployeeEmail,
		BranchID:      row.BranchID,
		Amount:        row.Amount,
		Description:   row.Description,
		Status:        row.Status,
		ReviewedBy:    row.ReviewedBy,
		ReviewedAt:    row.ReviewedAt,
		CreatedAt:     row.CreatedAt,
	}
}

// auditDetailAmount serializa el monto para el payload de bitácora con dos decimales.
func auditDetailAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
