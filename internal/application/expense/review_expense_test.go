package expense_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CajaMenor-api/internal/application/expense"
	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memState estado compartido de los fakes. El runner de transacciones toma
// un snapshot antes de cada callback y lo restaura si falla, imitando el
// Commit/Rollback real.
type memState struct {
	mu       sync.Mutex
	expenses map[string]*entity.Expense
	custody  map[string]*entity.CashCustody // key: employeeID
	audit    []*entity.AuditLog
}

func newMemState() *memState {
	return &memState{
		expenses: make(map[string]*entity.Expense),
		custody:  make(map[string]*entity.CashCustody),
	}
}

func (s *memState) snapshot() (map[string]*entity.Expense, map[string]*entity.CashCustody, int) {
	expenses := make(map[string]*entity.Expense, len(s.expenses))
	for k, v := range s.expenses {
		cp := *v
		expenses[k] = &cp
	}
	custody := make(map[string]*entity.CashCustody, len(s.custody))
	for k, v := range s.custody {
		cp := *v
		custody[k] = &cp
	}
	return expenses, custody, len(s.audit)
}

type memExpenseRepo struct{ s *memState }

func (r *memExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	cp := *e
	r.s.expenses[e.ID] = &cp
	return nil
}

func (r *memExpenseRepo) GetByIDAndCompany(_ context.Context, id, companyID string) (*entity.Expense, error) {
	e, ok := r.s.expenses[id]
	if !ok || e.CompanyID != companyID {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memExpenseRepo) GetForUpdate(ctx context.Context, id, companyID string) (*entity.Expense, error) {
	return r.GetByIDAndCompany(ctx, id, companyID)
}

func (r *memExpenseRepo) SetReviewed(_ context.Context, id, companyID, status, reviewerID string, reviewedAt time.Time) error {
	e, ok := r.s.expenses[id]
	if !ok || e.CompanyID != companyID {
		// Como el UPDATE real: predicado sin coincidencia, cero filas afectadas.
		return nil
	}
	e.Status = status
	e.ReviewedBy = &reviewerID
	e.ReviewedAt = &reviewedAt
	e.UpdatedAt = reviewedAt
	return nil
}

func (r *memExpenseRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*repository.ExpenseWithEmployee, error) {
	var out []*repository.ExpenseWithEmployee
	for _, e := range r.s.expenses {
		if e.CompanyID == companyID {
			out = append(out, &repository.ExpenseWithEmployee{Expense: *e})
		}
	}
	return out, nil
}

func (r *memExpenseRepo) ListByEmployee(_ context.Context, employeeID, companyID string, _, _ int) ([]*repository.ExpenseWithEmployee, error) {
	var out []*repository.ExpenseWithEmployee
	for _, e := range r.s.expenses {
		if e.CompanyID == companyID && e.EmployeeID == employeeID {
			out = append(out, &repository.ExpenseWithEmployee{Expense: *e})
		}
	}
	return out, nil
}

type memCustodyRepo struct{ s *memState }

func (r *memCustodyRepo) Create(_ context.Context, c *entity.CashCustody) error {
	if _, exists := r.s.custody[c.EmployeeID]; exists {
		return domain.ErrCustodyExists
	}
	cp := *c
	r.s.custody[c.EmployeeID] = &cp
	return nil
}

func (r *memCustodyRepo) GetByEmployee(_ context.Context, employeeID, companyID string) (*entity.CashCustody, error) {
	c, ok := r.s.custody[employeeID]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustodyRepo) GetByEmployeeForUpdate(ctx context.Context, employeeID, companyID string) (*entity.CashCustody, error) {
	return r.GetByEmployee(ctx, employeeID, companyID)
}

func (r *memCustodyRepo) UpdateBalance(_ context.Context, id, companyID string, newBalance decimal.Decimal, updatedAt time.Time) error {
	for _, c := range r.s.custody {
		if c.ID == id && c.CompanyID == companyID {
			c.CurrentBalance = newBalance
			c.LastUpdated = updatedAt
			return nil
		}
	}
	// Como el UPDATE real: predicado sin coincidencia, cero filas afectadas.
	return nil
}

func (r *memCustodyRepo) ListByCompany(_ context.Context, companyID string) ([]*repository.CustodyWithEmployee, error) {
	var out []*repository.CustodyWithEmployee
	for _, c := range r.s.custody {
		if c.CompanyID == companyID {
			out = append(out, &repository.CustodyWithEmployee{CashCustody: *c})
		}
	}
	return out, nil
}

func (r *memCustodyRepo) ListByEmployee(_ context.Context, employeeID, companyID string) ([]*repository.CustodyWithEmployee, error) {
	c, ok := r.s.custody[employeeID]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	return []*repository.CustodyWithEmployee{{CashCustody: *c}}, nil
}

type memAuditRepo struct{ s *memState }

func (r *memAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	cp := *log
	r.s.audit = append(r.s.audit, &cp)
	return nil
}

func (r *memAuditRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*repository.AuditLogWithActor, error) {
	var out []*repository.AuditLogWithActor
	for _, a := range r.s.audit {
		if a.CompanyID == companyID {
			out = append(out, &repository.AuditLogWithActor{AuditLog: *a})
		}
	}
	return out, nil
}

// memTxRunner serializa los callbacks con un mutex (dos revisiones
// concurrentes del mismo gasto nunca ven el mismo estado PENDING) y
// restaura el snapshot si el callback falla.
type memTxRunner struct{ s *memState }

func (r *memTxRunner) Run(_ context.Context, fn func(
	expenseRepo repository.ExpenseRepository,
	custodyRepo repository.CustodyRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	expSnap, cusSnap, auditLen := r.s.snapshot()
	err := fn(&memExpenseRepo{r.s}, &memCustodyRepo{r.s}, &memAuditRepo{r.s})
	if err != nil {
		r.s.expenses = expSnap
		r.s.custody = cusSnap
		r.s.audit = r.s.audit[:auditLen]
		return err
	}
	return nil
}

type memBranchRepo struct {
	branches map[string]*entity.Branch
}

func (r *memBranchRepo) Create(_ context.Context, b *entity.Branch) error {
	r.branches[b.ID] = b
	return nil
}

func (r *memBranchRepo) GetByIDAndCompany(_ context.Context, id, companyID string) (*entity.Branch, error) {
	b, ok := r.branches[id]
	if !ok || b.CompanyID != companyID {
		return nil, nil
	}
	return b, nil
}

func (r *memBranchRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range r.branches {
		if b.CompanyID == companyID {
			out = append(out, b)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA   = "company-a"
	companyB   = "company-b"
	employeeID = "employee-1"
	reviewerID = "reviewer-1"
)

func newFixture(t *testing.T, balance, expenseAmount string) (*expense.ExpenseUseCase, *memState) {
	t.Helper()
	s := newMemState()
	now := time.Now()
	s.custody[employeeID] = &entity.CashCustody{
		ID: "custody-1", EmployeeID: employeeID, CompanyID: companyA,
		CurrentBalance: decimal.RequireFromString(balance), LastUpdated: now, CreatedAt: now,
	}
	s.expenses["expense-1"] = &entity.Expense{
		ID: "expense-1", CompanyID: companyA, EmployeeID: employeeID,
		Amount: decimal.RequireFromString(expenseAmount), Description: "taxi al banco",
		Status: entity.ExpenseStatusPending, CreatedAt: now, UpdatedAt: now,
	}
	uc := expense.NewExpenseUseCase(&memTxRunner{s}, &memExpenseRepo{s}, &memBranchRepo{branches: map[string]*entity.Branch{}})
	return uc, s
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de revisión
// ──────────────────────────────────────────────────────────────────────────────

// Aprobar un gasto PENDING descuenta el monto de la custodia y deja
// exactamente una entrada de bitácora.
func TestReview_AprobarDescuentaCustodia(t *testing.T) {
	uc, s := newFixture(t, "5000", "150")

	out, err := uc.Review(context.Background(), "expense-1", companyA, reviewerID, entity.ExpenseStatusApproved)
	require.NoError(t, err)

	assert.Equal(t, entity.ExpenseStatusApproved, out.Status)
	require.NotNil(t, out.ReviewedBy)
	assert.Equal(t, reviewerID, *out.ReviewedBy)
	assert.NotNil(t, out.ReviewedAt)

	assert.True(t, s.custody[employeeID].CurrentBalance.Equal(decimal.RequireFromString("4850")),
		"el saldo debe quedar en 5000 - 150 = 4850, quedó %s", s.custody[employeeID].CurrentBalance)

	require.Len(t, s.audit, 1, "debe haber exactamente una entrada de bitácora")
	entry := s.audit[0]
	assert.Equal(t, entity.AuditExpenseApproved, entry.Action)
	assert.Equal(t, reviewerID, entry.UserID)
	assert.Equal(t, "expense-1", entry.Details["expenseId"])
	assert.Equal(t, "150.00", entry.Details["amount"])
}

// Sin saldo suficiente la aprobación falla completa: el gasto sigue PENDING,
// el saldo intacto y sin bitácora.
func TestReview_SaldoInsuficienteRevierteTodo(t *testing.T) {
	uc, s := newFixture(t, "100", "200")

	_, err := uc.Review(context.Background(), "expense-1", companyA, reviewerID, entity.ExpenseStatusApproved)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	assert.Equal(t, entity.ExpenseStatusPending, s.expenses["expense-1"].Status,
		"el gasto debe seguir PENDING tras el rollback")
	assert.True(t, s.custody[employeeID].CurrentBalance.Equal(decimal.RequireFromString("100")),
		"el saldo no debe haberse tocado")
	assert.Empty(t, s.audit, "no debe quedar bitácora de una revisión fallida")
}

// Un empleado sin custodia tampoco puede recibir aprobaciones.
func TestReview_SinCustodiaFallaAprobacion(t *testing.T) {
	uc, s := newFixture(t, "5000", "150")
	delete(s.custody, employeeID)

	_, err := uc.Review(context.Background(), "expense-1", companyA, reviewerID, entity.ExpenseStatusApproved)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, entity.ExpenseStatusPending, s.expenses["expense-1"].Status)
}

// Rechazar no toca la custodia pero sí estampa revisor y bitácora.
func TestReview_RechazarNoTocaCustodia(t *testing.T) {
	uc, s := newFixture(t, "5000", "150")

	out, err := uc.Review(context.Background(), "expense-1", companyA, reviewerID, entity.ExpenseStatusRejected)
	require.NoError(t, err)

	assert.Equal(t, entity.ExpenseStatusRejected, out.Status)
	assert.True(t, s.custody[employeeID].CurrentBalance.Equal(decimal.RequireFromString("5000")))
	require.Len(t, s.audit, 1)
	assert.Equal(t, entity.AuditExpenseRejected, s.audit[0].Action)
}

// La segunda revisión del mismo gasto falla: los estados terminales no
// admiten transiciones.
func TestReview_SegundaRevisionFalla(t *testing.T) {
	uc, s := newFixture(t, "5000", "150")

	_, err := uc.Review(context.Background(), "expense-1", companyA, reviewerID, entity.ExpenseStatusApproved)
	require.NoError(t, err)

	_, err = uc.Review(context.Background(), "expense-1", companyA, reviewerID, entity.ExpenseStatusRejected)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	// El saldo solo se descontó una vez
	assert.True(t, s.custody[employeeID].CurrentBalance.Equal(decimal.RequireFromString("4850")))
	assert.Len(t, s.audit, 1)
}

// Un gasto de otra empresa se comporta como inexistente, aunque el ID sea real.
func TestReview_OtroTenantNoVeElGasto(t *testing.T) {
	uc, s := newFixture(t, "5000", "150")

	_, err := uc.Review(context.Background(), "expense-1", companyB, reviewerID, entity.ExpenseStatusApproved)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.ExpenseStatusPending, s.expenses["expense-1"].Status)
}

// Estados que no son terminales se rechazan antes de abrir la transacción.
func TestReview_EstadoInvalido(t *testing.T) {
	uc, _ := newFixture(t, "5000", "150")

	for _, status := range []string{"PENDING", "approved", "CANCELLED", ""} {
		_, err := uc.Review(context.Background(), "expense-1", companyA, reviewerID, status)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "status %q debe rechazarse", status)
	}
}

// Las escrituras de revisión también van acotadas por empresa a nivel de
// repositorio: con otra empresa en el predicado no se toca ninguna fila.
func TestReview_EscriturasAcotadasPorEmpresa(t *testing.T) {
	_, s := newFixture(t, "5000", "150")
	now := time.Now()

	expRepo := &memExpenseRepo{s}
	require.NoError(t, expRepo.SetReviewed(context.Background(), "expense-1", companyB, entity.ExpenseStatusApproved, reviewerID, now))
	assert.Equal(t, entity.ExpenseStatusPending, s.expenses["expense-1"].Status,
		"un SetReviewed de otra empresa no debe tocar el gasto")

	cusRepo := &memCustodyRepo{s}
	require.NoError(t, cusRepo.UpdateBalance(context.Background(), "custody-1", companyB, decimal.Zero, now))
	assert.True(t, s.custody[employeeID].CurrentBalance.Equal(decimal.RequireFromString("5000")),
		"un UpdateBalance de otra empresa no debe tocar el saldo")
}

// Dos revisiones concurrentes del mismo gasto: exactamente una gana y el
// saldo se descuenta como máximo una vez.
func TestReview_ConcurrenciaUnSoloGanador(t *testing.T) {
	uc, s := newFixture(t, "5000", "150")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Review(context.Background(), "expense-1", companyA, reviewerID, entity.ExpenseStatusApproved)
		}(i)
	}
	wg.Wait()

	var okCount, transitionErrs int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case err == domain.ErrInvalidTransition:
			transitionErrs++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una revisión debe ganar")
	assert.Equal(t, 1, transitionErrs, "la otra debe ver el gasto ya procesado")

	assert.True(t, s.custody[employeeID].CurrentBalance.Equal(decimal.RequireFromString("4850")),
		"el descuento debe aplicarse una sola vez")
	assert.Len(t, s.audit, 1)
}
