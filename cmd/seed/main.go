// seed puebla la base de datos con dos empresas aisladas para desarrollo
// y pruebas manuales de aislamiento multi-tenant.
//
// Uso: go run ./cmd/seed
//
// Empresa A: owner@a.com, sarah@a.com (contadora), john@a.com (empleado con custodia).
// Empresa B: emp@b.com (empleado con custodia y un gasto PENDING).
// Password de todos: password123
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/infrastructure/postgres"
	"github.com/jhoicas/CajaMenor-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	// Limpiar en orden inverso a las FKs
	for _, table := range []string{"audit_logs", "expenses", "cash_custody", "users", "branches", "companies"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			fail("limpiar %s: %v", table, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de password: %v", err)
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	custodyRepo := postgres.NewCustodyRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	now := time.Now()

	// ── Empresa A ─────────────────────────────────────────────────────────────
	companyA := &entity.Company{
		ID: uuid.New().String(), Name: "Tech Solutions A",
		SubscriptionStatus: entity.SubscriptionActive, CreatedAt: now, UpdatedAt: now,
	}
	if err := companyRepo.Create(ctx, companyA); err != nil {
		fail("crear empresa A: %v", err)
	}

	branchA := &entity.Branch{ID: uuid.New().String(), CompanyID: companyA.ID, Name: "Sede Principal", CreatedAt: now}
	if err := branchRepo.Create(ctx, branchA); err != nil {
		fail("crear sucursal A: %v", err)
	}

	ownerA := newUser(companyA.ID, "owner@a.com", "Ahmed Owner", entity.RoleOwner, string(hash), nil, now)
	accountantA := newUser(companyA.ID, "sarah@a.com", "Sarah Accountant", entity.RoleAccountant, string(hash), nil, now)
	empA := newUser(companyA.ID, "john@a.com", "John Doe", entity.RoleEmployee, string(hash), &branchA.ID, now)
	for _, u := range []*entity.User{ownerA, accountantA, empA} {
		if err := userRepo.Create(ctx, u); err != nil {
			fail("crear usuario %s: %v", u.Email, err)
		}
	}

	if err := custodyRepo.Create(ctx, &entity.CashCustody{
		ID: uuid.New().String(), EmployeeID: empA.ID, CompanyID: companyA.ID,
		CurrentBalance: decimal.NewFromInt(5000), LastUpdated: now, CreatedAt: now,
	}); err != nil {
		fail("crear custodia A: %v", err)
	}

	reviewedAt := now
	approvedExpense := &entity.Expense{
		ID: uuid.New().String(), CompanyID: companyA.ID, EmployeeID: empA.ID,
		Amount: decimal.NewFromInt(250), Description: "Office Maintenance",
		Status: entity.ExpenseStatusApproved, ReviewedBy: &accountantA.ID, ReviewedAt: &reviewedAt,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := expenseRepo.Create(ctx, approvedExpense); err != nil {
		fail("crear gasto A: %v", err)
	}
	// El Create no escribe los campos de revisión; estamparlos aparte.
	if err := expenseRepo.SetReviewed(ctx, approvedExpense.ID, companyA.ID, entity.ExpenseStatusApproved, accountantA.ID, reviewedAt); err != nil {
		fail("marcar gasto A revisado: %v", err)
	}

	// ── Empresa B (prueba de aislamiento) ─────────────────────────────────────
	companyB := &entity.Company{
		ID: uuid.New().String(), Name: "Retail Corp B",
		SubscriptionStatus: entity.SubscriptionActive, CreatedAt: now, UpdatedAt: now,
	}
	if err := companyRepo.Create(ctx, companyB); err != nil {
		fail("crear empresa B: %v", err)
	}

	empB := newUser(companyB.ID, "emp@b.com", "Employee B", entity.RoleEmployee, string(hash), nil, now)
	if err := userRepo.Create(ctx, empB); err != nil {
		fail("crear usuario B: %v", err)
	}

	if err := custodyRepo.Create(ctx, &entity.CashCustody{
		ID: uuid.New().String(), EmployeeID: empB.ID, CompanyID: companyB.ID,
		CurrentBalance: decimal.NewFromInt(1200), LastUpdated: now, CreatedAt: now,
	}); err != nil {
		fail("crear custodia B: %v", err)
	}

	if err := expenseRepo.Create(ctx, &entity.Expense{
		ID: uuid.New().String(), CompanyID: companyB.ID, EmployeeID: empB.ID,
		Amount: decimal.RequireFromString("99.99"), Description: "Secret Expense Company B",
		Status: entity.ExpenseStatusPending, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		fail("crear gasto B: %v", err)
	}

	fmt.Println("Seed completo. Tenants aislados.")
	fmt.Println("Empresa A: owner@a.com, sarah@a.com, john@a.com")
	fmt.Println("Empresa B: emp@b.com")
	fmt.Println("Password: password123")
}

func newUser(companyID, email, name, role, hash string, branchID *string, now time.Time) *entity.User {
	return &entity.User{
		ID: uuid.New().String(), CompanyID: companyID, Email: email,
		PasswordHash: hash, Name: name, Role: role, BranchID: branchID,
		Status: "active", CreatedAt: now, UpdatedAt: now,
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
