package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/CajaMenor-api/internal/application/analytics"
	"github.com/jhoicas/CajaMenor-api/internal/application/audit"
	"github.com/jhoicas/CajaMenor-api/internal/application/auth"
	"github.com/jhoicas/CajaMenor-api/internal/application/custody"
	"github.com/jhoicas/CajaMenor-api/internal/application/expense"
	"github.com/jhoicas/CajaMenor-api/internal/application/insights"
	"github.com/jhoicas/CajaMenor-api/internal/application/report"
	infraai "github.com/jhoicas/CajaMenor-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/CajaMenor-api/internal/infrastructure/pdf"
	"github.com/jhoicas/CajaMenor-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/CajaMenor-api/internal/interfaces/http"
	"github.com/jhoicas/CajaMenor-api/pkg/config"
	"github.com/jhoicas/CajaMenor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	custodyRepo := postgres.NewCustodyRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	expenseUC := expense.NewExpenseUseCase(txRunner, expenseRepo, branchRepo)
	custodyUC := custody.NewCustodyUseCase(txRunner, custodyRepo, userRepo)
	auditUC := audit.NewAuditUseCase(auditRepo)
	dashboardUC := analytics.NewDashboardUseCase(reportRepo)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	insightsUC := insights.NewInsightsUseCase(geminiSvc, reportRepo, expenseRepo, log.Zerolog())

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewReportUseCase(companyRepo, expenseRepo, reportRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Caja Menor Pro API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ExpenseUC:   expenseUC,
		CustodyUC:   custodyUC,
		AuditUC:     auditUC,
		DashboardUC: dashboardUC,
		InsightsUC:  insightsUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
