package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/colorstock-api/internal/application/analytics"
	"github.com/jhoicas/colorstock-api/internal/application/auth"
	"github.com/jhoicas/colorstock-api/internal/application/inventory"
	"github.com/jhoicas/colorstock-api/internal/application/movements"
	"github.com/jhoicas/colorstock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	InventoryUC   *usecase.InventoryUseCase
	ApplyMovement *inventory.ApplyMovementUseCase
	ListMovements *movements.ListMovementsUseCase
	ReportUC      *analytics.ReportUseCase
	DashboardUC   *analytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
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

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Inventory: líneas producto + color (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/", inventoryHandler.List)

	// Movimientos de stock (protegido)
	movementHandler := NewMovementHandler(deps.ApplyMovement, deps.ListMovements)
	invGroup.Post("/movements", movementHandler.Apply)
	invGroup.Post("/movements/batch", movementHandler.ApplyBatch)

	movGroup := protected.Group("/movements")
	movGroup.Get("/", movementHandler.List)
	movGroup.Get("/recent", movementHandler.Recent)

	// Reportes y dashboard (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/inventory", reportHandler.GetInventoryReport)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
