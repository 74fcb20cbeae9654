package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-panel/internal/application/analytics"
	"github.com/jhoicas/Inventario-panel/internal/application/inventory"
	"github.com/jhoicas/Inventario-panel/internal/application/usecase"
	"github.com/jhoicas/Inventario-panel/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	MutationUC  *inventory.MutationUseCase
	KpiUC       *analytics.KpiUseCase
	Hub         *ws.Hub
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Tabla de productos (lectura)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)

	// Catálogo de bodegas (referencia)
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)

	// Dashboard: KPIs agregados y serie temporal
	dashboardHandler := NewDashboardHandler(deps.ProductUC, deps.KpiUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
	api.Get("/kpis", dashboardHandler.GetKpis)

	// Mutaciones
	inventoryHandler := NewInventoryHandler(deps.MutationUC)
	products.Put("/:id/demand", inventoryHandler.UpdateDemand)
	api.Post("/inventory/transfers", inventoryHandler.Transfer)

	// Stream de eventos de cambio
	if deps.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws/inventory", websocket.New(deps.Hub.Handler()))
	}
}
