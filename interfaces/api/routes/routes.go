package routes

import (
	"github.com/gofiber/fiber/v2"

	"seo-backoffice/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app, h)

	api := app.Group("/api/v1")

	SetupAdminRoutes(api, h)
	SetupSEORoutes(api, h)
}
