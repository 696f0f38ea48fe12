package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *DeviceGateHandler, adminKeyHash string) {
	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Post("/device-check", h.CheckDevice)
	api.Get("/settings", h.GetSettings)

	// Admin-only endpoints
	admin := app.Group("/api", h.RequireAdminKey(adminKeyHash))
	admin.Post("/settings", h.UpdateSettings)
	admin.Get("/customers/:customer_id/devices", h.ListCustomerDevices)
}
