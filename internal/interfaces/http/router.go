package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Items       ItemService
	Counts      CountService
	Reports     ReportService
	Exporter    Exporter
	RateLimiter RateLimiter // nil = sin límite
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(RateLimit(deps.RateLimiter))
	}
	api.Use(AttributionMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Items. Las rutas fijas van antes de /:id.
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.Items)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/expiring", itemHandler.Expiring)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.Get)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/logs", itemHandler.Logs)

	// Conteos y ajustes de valor
	inventoryHandler := NewInventoryHandler(deps.Counts)
	items.Post("/:id/count", inventoryHandler.UpdateCount)
	items.Post("/:id/value", inventoryHandler.AdjustValue)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports, deps.Exporter)
	reports.Get("/variance", reportHandler.Variance)
	reports.Get("/turnover", reportHandler.Turnover)
	reports.Get("/waste", reportHandler.Waste)
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/profit", reportHandler.Profit)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/:kind/export", reportHandler.Export)
}
