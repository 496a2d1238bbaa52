package entity

import "time"

// Estados de suscripción de una Company.
const (
	SubscriptionActive   = "ACTIVE"
	SubscriptionInactive = "INACTIVE"
)

// Company representa una empresa/tenant del sistema. Toda entidad del dominio
// pertenece a exactamente una Company y nunca es visible fuera de ella.
type Company struct {
	ID                 string
	Name               string
	SubscriptionStatus string // ACTIVE, INACTIVE
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
