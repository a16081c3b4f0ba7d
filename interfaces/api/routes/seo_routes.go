package routes

import (
	"github.com/gofiber/fiber/v2"

	"seo-backoffice/interfaces/api/handlers"
)

func SetupSEORoutes(api fiber.Router, h *handlers.Handlers) {
	seo := api.Group("/seo", h.SessionGuard)

	// path คงที่ต้องมาก่อน /:table
	seo.Get("/tables", h.SEOHandler.Tables)
	seo.Post("/snapshots", h.SEOHandler.Snapshot)

	seo.Get("/:table", h.SEOHandler.List)
	seo.Get("/:table/export", h.SEOHandler.Export)
	seo.Get("/:table/template", h.SEOHandler.Template)
	seo.Post("/:table/import", h.SEOHandler.Import)
	seo.Put("/:table/:id", h.SEOHandler.Update)
}
