package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashCustody saldo de caja menor bajo custodia de un empleado.
// Máximo un registro por empleado; el CompanyID debe coincidir con el del empleado.
// El saldo solo se muta vía aprobación de gastos (decremento) o ajuste autorizado.
type CashCustody struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	CurrentBalance decimal.Decimal
	LastUpdated    time.Time
	CreatedAt      time.Time
}

// CanCover indica si el saldo alcanza para reembolsar el monto dado.
func (c *CashCustody) CanCover(amount decimal.Decimal) bool {
	return c.CurrentBalance.GreaterThanOrEqual(amount)
}
