package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/CajaMenor-api/internal/application/analytics"
	"github.com/jhoicas/CajaMenor-api/internal/application/audit"
	"github.com/jhoicas/CajaMenor-api/internal/application/auth"
	"github.com/jhoicas/CajaMenor-api/internal/application/custody"
	"github.com/jhoicas/CajaMenor-api/internal/application/expense"
	"github.com/jhoicas/CajaMenor-api/internal/application/insights"
	"github.com/jhoicas/CajaMenor-api/internal/application/report"
	"github.com/jhoicas/CajaMenor-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ExpenseUC   *expense.ExpenseUseCase
	CustodyUC   *custody.CustodyUseCase
	AuditUC     *audit.AuditUseCase
	DashboardUC *analytics.DashboardUseCase
	InsightsUC  *insights.InsightsUseCase
	ReportUC    *report.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Expenses: crear lo puede cualquier rol; revisar solo roles gerenciales
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", RequirePermission(authz.OpExpenseCreate), expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Patch("/:id/status", RequirePermission(authz.OpExpenseReview), expenseHandler.Review)

	// Custody: aprovisionar y ajustar solo roles gerenciales; listar todos
	custodyGroup := protected.Group("/custody")
	custodyHandler := NewCustodyHandler(deps.CustodyUC)
	custodyGroup.Post("/", RequirePermission(authz.OpCustodyAdjust), custodyHandler.Provision)
	custodyGroup.Get("/", custodyHandler.List)
	custodyGroup.Patch("/:userId/adjust", RequirePermission(authz.OpCustodyAdjust), custodyHandler.Adjust)

	// Audit logs (solo roles gerenciales)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", RequirePermission(authz.OpAuditView), auditHandler.List)

	// Dashboard (solo roles gerenciales)
	dashboard := protected.Group("/dashboard", RequirePermission(authz.OpReportView))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.InsightsUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/insights", dashboardHandler.GetInsights)

	// Reports (solo roles gerenciales)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/expenses/pdf", RequirePermission(authz.OpReportView), reportHandler.DownloadExpensePDF)
}
