package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stock-ledger/internal/application/analytics"
	"github.com/jhoicas/stock-ledger/internal/application/auth"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	ItemUC            *usecase.ItemUseCase
	CategoryUC        *usecase.CategoryUseCase
	SupplierUC        *usecase.SupplierUseCase
	UserUC            *usecase.UserUseCase
	RecordTransaction *inventory.RecordTransactionUseCase
	History           *inventory.HistoryUseCase
	DashboardUC       *appanalytics.DashboardUseCase
	ReportUC          *report.ReportUseCase
	JWTSecret         string
	ServiceName       string
	Log               *logger.Logger
}

// Router registra las rutas de la API. Los permisos por rol se resuelven aquí, no en los casos de uso.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleStandard)
	adminOnly := RequireRole(entity.RoleAdmin)

	itemHandler := NewItemHandler(deps.ItemUC, deps.CategoryUC, log)
	items := protected.Group("/items")
	items.Get("/", anyRole, itemHandler.List)
	items.Get("/:id", anyRole, itemHandler.GetByID)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Put("/:id", adminOnly, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)
	protected.Get("/categories", anyRole, itemHandler.ListCategories)

	supplierHandler := NewSupplierHandler(deps.SupplierUC, log)
	suppliers := protected.Group("/suppliers", adminOnly)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Libro de movimientos: cualquier usuario autenticado.
	txHandler := NewTransactionHandler(deps.RecordTransaction, deps.History, log)
	txs := protected.Group("/transactions", anyRole)
	txs.Post("/", txHandler.Record)
	txs.Get("/", txHandler.List)
	txs.Get("/recent", txHandler.Recent)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	protected.Get("/dashboard/summary", anyRole, dashboardHandler.GetSummary)

	reportHandler := NewReportHandler(deps.ReportUC, log)
	protected.Get("/reports/:kind", adminOnly, reportHandler.Export)

	userHandler := NewUserHandler(deps.UserUC, log)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id/role", userHandler.ChangeRole)
	users.Put("/:id/password", userHandler.ChangePassword)
	users.Delete("/:id", userHandler.Delete)
}
