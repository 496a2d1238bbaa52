package entity

import "time"

// Roles válidos para User.
const (
	RoleOwner      = "OWNER"
	RoleAccountant = "ACCOUNTANT"
	RoleEmployee   = "EMPLOYEE"
)

// ValidRole indica si el rol pertenece al conjunto cerrado de roles del sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAccountant, RoleEmployee:
		return true
	}
	return false
}

// User representa un usuario del sistema (pertenece a una Company).
// El rol es inmutable una vez asignado.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string  // OWNER, ACCOUNTANT, EMPLOYEE
	BranchID     *string // sucursal opcional
	Status       string  // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
