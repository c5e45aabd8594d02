package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jewelry-store/internal/api/http/handlers"
	"github.com/spec-kit/jewelry-store/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Pages       *handlers.PagesHandler
	AdminAuth   *handlers.AdminAuthHandler
	Categories  *handlers.CategoriesHandler
	AdminOrders *handlers.AdminOrdersHandler
	Orders      *handlers.OrdersHandler
	Newsletter  *handlers.NewsletterHandler
	SessionGate *auth.SessionGate
}

// RegisterRoutes wires HTTP routes. The session gate runs app-wide so every
// /admin page navigation passes through it before any handler.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.SessionGate.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/admin", cfg.Pages.Dashboard)
	app.Get("/admin/login", cfg.Pages.Login)

	api := app.Group("/api")
	api.Post("/orders", cfg.Orders.Place)
	api.Get("/orders/:orderId?", cfg.Orders.Track)
	api.Post("/newsletter/subscribe", cfg.Newsletter.Subscribe)
	api.Post("/newsletter/unsubscribe", cfg.Newsletter.Unsubscribe)

	adminAPI := api.Group("/admin")
	adminAPI.Post("/login", cfg.AdminAuth.Login)
	adminAPI.Post("/logout", cfg.AdminAuth.Logout)
	adminAPI.Get("/categories", cfg.Categories.List)
	adminAPI.Post("/categories", cfg.Categories.Create)
	adminAPI.Put("/categories/:id", cfg.Categories.Update)
	adminAPI.Delete("/categories/:id", cfg.Categories.Delete)
	adminAPI.Get("/orders", cfg.AdminOrders.List)
	adminAPI.Put("/orders/:id/status", cfg.AdminOrders.UpdateStatus)
	adminAPI.Get("/stats", cfg.AdminOrders.Stats)
}
