package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ssm-admin/ssm-api/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Staff   *handlers.StaffHandler
	Stock   *handlers.StockHandler
	Metrics *handlers.MetricsHandler
}

// RegisterRoutes wires HTTP routes. The staff paths keep the names the
// dashboard client already calls.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics.Show)
	}

	app.Get("/getUser", cfg.Staff.List)
	app.Delete("/removeUser/:id", cfg.Staff.Remove)
	app.Put("/updateUser/:id", cfg.Staff.Update)
	app.Post("/createUser", cfg.Staff.Create)

	stock := app.Group("/stock")
	stock.Get("/", cfg.Stock.List)
	stock.Post("/", cfg.Stock.Create)
	stock.Get("/:id", cfg.Stock.Get)
	stock.Put("/:id", cfg.Stock.Update)
	stock.Delete("/:id", cfg.Stock.Remove)
}
