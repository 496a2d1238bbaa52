package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
)

// CustodyWithEmployee custodia junto con los datos de presentación del empleado.
type CustodyWithEmployee struct {
	entity.CashCustody
	EmployeeName  string
	EmployeeEmail string
}

// CustodyRepository define el puerto de persistencia para CashCustody (DIP).
// Toda consulta lleva el predicado company_id; las variantes ForUpdate bloquean
// la fila para serializar mutaciones concurrentes del mismo saldo.
type CustodyRepository interface {
	Create(ctx context.Context, custody *entity.CashCustody) error
	// GetByEmployee devuelve nil, nil si el empleado no tiene custodia en la empresa.
	GetByEmployee(ctx context.Context, employeeID, companyID string) (*entity.CashCustody, error)
	// GetByEmployeeForUpdate igual que GetByEmployee pero con SELECT ... FOR UPDATE.
	// Solo tiene sentido dentro de una transacción.
	GetByEmployeeForUpdate(ctx context.Context, employeeID, companyID string) (*entity.CashCustody, error)
	// UpdateBalance escribe el saldo acotado por empresa: un id de otra empresa
	// no afecta ninguna fila.
	UpdateBalance(ctx context.Context, id, companyID string, newBalance decimal.Decimal, updatedAt time.Time) error
	ListByCompany(ctx context.Context, companyID string) ([]*CustodyWithEmployee, error)
	ListByEmployee(ctx context.Context, employeeID, companyID string) ([]*CustodyWithEmployee, error)
}
