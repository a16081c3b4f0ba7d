package routes

import (
	"github.com/gofiber/fiber/v2"

	"seo-backoffice/interfaces/api/handlers"
)

func SetupAdminRoutes(api fiber.Router, h *handlers.Handlers) {
	admin := api.Group("/admin")

	admin.Post("/auth", h.AuthHandler.Login)                  // login ด้วย pseudo หรือ mail
	admin.Post("/", h.SessionGuard, h.GatewayHandler.Execute) // generic table gateway
}
