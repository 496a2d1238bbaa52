package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/CajaMenor-api/internal/domain/authz"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
)

// La tabla de capacidades es el contrato de acceso completo del sistema;
// este test la fija para que un cambio accidental se detecte de inmediato.
func TestCapacidadesPorRol(t *testing.T) {
	cases := []struct {
		role      string
		operation string
		allowed   bool
	}{
		// OWNER: todo
		{entity.RoleOwner, authz.OpExpenseCreate, true},
		{entity.RoleOwner, authz.OpExpenseReview, true},
		{entity.RoleOwner, authz.OpCustodyAdjust, true},
		{entity.RoleOwner, authz.OpAuditView, true},
		{entity.RoleOwner, authz.OpReportView, true},
		// ACCOUNTANT: todo
		{entity.RoleAccountant, authz.OpExpenseReview, true},
		{entity.RoleAccountant, authz.OpCustodyAdjust, true},
		{entity.RoleAccountant, authz.OpAuditView, true},
		// EMPLOYEE: solo crear gastos
		{entity.RoleEmployee, authz.OpExpenseCreate, true},
		{entity.RoleEmployee, authz.OpExpenseReview, false},
		{entity.RoleEmployee, authz.OpCustodyAdjust, false},
		{entity.RoleEmployee, authz.OpAuditView, false},
		{entity.RoleEmployee, authz.OpReportView, false},
	}

	for _, tc := range cases {
		got := authz.Allowed(tc.role, tc.operation)
		assert.Equalf(t, tc.allowed, got,
			"rol %s, operación %s: se esperaba allowed=%v", tc.role, tc.operation, tc.allowed)
	}
}

func TestRolDesconocidoSinCapacidades(t *testing.T) {
	assert.False(t, authz.Allowed("SUPERADMIN", authz.OpExpenseReview),
		"un rol fuera de la tabla no debe tener ninguna capacidad")
	assert.False(t, authz.Allowed("", authz.OpExpenseCreate))
}

func TestAlcanceDeListados(t *testing.T) {
	assert.True(t, authz.CanViewAll(entity.RoleOwner))
	assert.True(t, authz.CanViewAll(entity.RoleAccountant))
	assert.False(t, authz.CanViewAll(entity.RoleEmployee),
		"EMPLOYEE solo debe ver sus propios registros")
}
