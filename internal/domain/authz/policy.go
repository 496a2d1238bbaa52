// Package authz contiene la tabla estática de capacidades rol → operaciones.
// Es la única fuente de verdad del control de acceso: handlers y casos de uso
// la consultan en lugar de ramificar por rol en cada ruta.
package authz

import "github.com/jhoicas/CajaMenor-api/internal/domain/entity"

// Operaciones autorizables.
const (
	OpExpenseCreate = "expense:create"
	OpExpenseReview = "expense:review"
	OpCustodyAdjust = "custody:adjust"
	OpAuditView     = "audit:view"
	OpReportView    = "report:view"
)

// capabilities: qué operaciones puede ejecutar cada rol.
// EMPLOYEE solo crea gastos y consulta lo propio; OWNER y ACCOUNTANT tienen
// el mismo conjunto completo (la distinción entre ambos es organizacional,
// no de permisos, en este dominio).
var capabilities = map[string]map[string]bool{
	entity.RoleOwner: {
		OpExpenseCreate: true,
		OpExpenseReview: true,
		OpCustodyAdjust: true,
		OpAuditView:     true,
		OpReportView:    true,
	},
	entity.RoleAccountant: {
		OpExpenseCreate: true,
		OpExpenseReview: true,
		OpCustodyAdjust: true,
		OpAuditView:     true,
		OpReportView:    true,
	},
	entity.RoleEmployee: {
		OpExpenseCreate: true,
	},
}

// Allowed indica si el rol puede ejecutar la operación.
// Roles desconocidos no tienen ninguna capacidad.
func Allowed(role, operation string) bool {
	ops, ok := capabilities[role]
	if !ok {
		return false
	}
	return ops[operation]
}

// CanViewAll indica si el rol ve los registros de toda la empresa en los
// listados (gastos, custodias). EMPLOYEE solo ve los propios.
func CanViewAll(role string) bool {
	return role == entity.RoleOwner || role == entity.RoleAccountant
}
