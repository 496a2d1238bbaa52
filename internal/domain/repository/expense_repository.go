package repository

import (
	"context"
	"time"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
)

// ExpenseWithEmployee gasto junto con los datos de presentación del empleado.
type ExpenseWithEmployee struct {
	entity.Expense
	EmployeeName  string
	EmployeeEmail string
}

// ExpenseRepository define el puerto de persistencia para Expense (DIP).
// Toda consulta lleva el predicado company_id: un ID de otra empresa se
// comporta como inexistente.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	// GetByIDAndCompany devuelve nil, nil si el gasto no existe en la empresa.
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Expense, error)
	// GetForUpdate igual que GetByIDAndCompany pero con SELECT ... FOR UPDATE.
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id, companyID string) (*entity.Expense, error)
	// SetReviewed estampa estado terminal, revisor y fecha de revisión,
	// acotado por empresa: un id de otra empresa no afecta ninguna fila.
	SetReviewed(ctx context.Context, id, companyID, status, reviewerID string, reviewedAt time.Time) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*ExpenseWithEmployee, error)
	ListByEmployee(ctx context.Context, employeeID, companyID string, limit, offset int) ([]*ExpenseWithEmployee, error)
}
