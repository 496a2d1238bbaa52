package entity

import "time"

// Branch sucursal de una Company; etiqueta dónde se incurrió un gasto.
// Sin ciclo de vida propio.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}
