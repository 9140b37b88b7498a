package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/josehoe716-wq/App-bodega-final/internal/application/analytics"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/auth"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/exits"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/export"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *inventory.UseCase
	RecordExit  *exits.RecordExitUseCase
	History     *exits.HistoryUseCase
	DashboardUC *analytics.DashboardUseCase
	ExportUC    *export.UseCase
	Voucher     VoucherGenerator
	JWTSecret   string
}

// Router registra las rutas de la API. Ambos roles consultan y registran
// salidas; las mutaciones de catálogo y las correcciones de historial son
// exclusivas del administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(auth.RoleAdministrador)

	// Materiales
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.InventoryUC)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Post("/", adminOnly, materialHandler.Create)
	materials.Post("/bulk", adminOnly, materialHandler.CreateBulk)
	materials.Put("/:id", adminOnly, materialHandler.Update)
	materials.Patch("/:id/stock", adminOnly, materialHandler.UpdateStock)
	materials.Delete("/:id", adminOnly, materialHandler.Delete)

	// Salidas individuales
	exitsGroup := protected.Group("/exits")
	exitHandler := NewExitHandler(deps.RecordExit, deps.History)
	exitsGroup.Post("/", exitHandler.Record)
	exitsGroup.Get("/", exitHandler.List)
	exitsGroup.Get("/:id", exitHandler.GetByID)
	exitsGroup.Patch("/:id", adminOnly, exitHandler.Update)
	exitsGroup.Delete("/:id", adminOnly, exitHandler.Delete)

	// Salidas por carrito
	cartGroup := protected.Group("/cart-exits")
	cartHandler := NewCartExitHandler(deps.RecordExit, deps.History, deps.Voucher)
	cartGroup.Post("/", cartHandler.Record)
	cartGroup.Get("/", cartHandler.List)
	cartGroup.Get("/:id", cartHandler.GetByID)
	cartGroup.Get("/:id/pdf", cartHandler.GetPDF)
	cartGroup.Patch("/:id", adminOnly, cartHandler.Update)
	cartGroup.Delete("/:id", adminOnly, cartHandler.Delete)

	// Historial unificado y contador de registro
	movementHandler := NewMovementHandler(deps.History)
	protected.Get("/movements", movementHandler.List)
	protected.Get("/registry/current", movementHandler.CurrentRegistryCode)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Importación/exportación CSV
	exportHandler := NewExportHandler(deps.ExportUC, deps.InventoryUC, deps.History)
	protected.Get("/export/materials", exportHandler.ExportMaterials)
	protected.Get("/export/movements", exportHandler.ExportMovements)
	protected.Post("/import/materials", adminOnly, exportHandler.ImportMaterials)
}
