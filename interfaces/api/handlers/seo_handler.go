package handlers

import (
	"github.com/gofiber/fiber/v2"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
	"seo-backoffice/domain/services"
	"seo-backoffice/interfaces/api/middleware"
	"seo-backoffice/pkg/logger"
	"seo-backoffice/pkg/utils"
)

type SEOHandler struct {
	seoService      services.SEOService
	snapshotService services.SnapshotService
}

func NewSEOHandler(seoService services.SEOService, snapshotService services.SnapshotService) *SEOHandler {
	return &SEOHandler{
		seoService:      seoService,
		snapshotService: snapshotService,
	}
}

// Tables GET /api/v1/seo/tables
func (h *SEOHandler) Tables(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, h.seoService.Tables())
}

// List GET /api/v1/seo/:table
func (h *SEOHandler) List(c *fiber.Ctx) error {
	table, err := models.ParseTable(c.Params("table"))
	if err != nil {
		return handleServiceError(c, err)
	}

	rows, err := h.seoService.List(c.UserContext(), middleware.GetAdminSession(c), table)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, nonNilRows(rows))
}

// Update PUT /api/v1/seo/:table/:id
func (h *SEOHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	table, err := models.ParseTable(c.Params("table"))
	if err != nil {
		return handleServiceError(c, err)
	}

	var record map[string]any
	if err := dto.DecodeJSON(c.Body(), &record); err != nil || record == nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	rows, err := h.seoService.UpdateSEO(ctx, middleware.GetAdminSession(c), table, pathID(c.Params("id")), record)
	if err != nil {
		return handleServiceError(c, err)
	}

	logger.InfoContext(ctx, "SEO fields updated", "table", table, "id", c.Params("id"))
	return utils.SuccessResponse(c, nonNilRows(rows))
}

// Export GET /api/v1/seo/:table/export
func (h *SEOHandler) Export(c *fiber.Ctx) error {
	table, err := models.ParseTable(c.Params("table"))
	if err != nil {
		return handleServiceError(c, err)
	}

	file, err := h.seoService.Export(c.UserContext(), middleware.GetAdminSession(c), table)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.AttachmentResponse(c, file.Filename, file.Content)
}

// Import POST /api/v1/seo/:table/import
func (h *SEOHandler) Import(c *fiber.Ctx) error {
	table, err := models.ParseTable(c.Params("table"))
	if err != nil {
		return handleServiceError(c, err)
	}

	result, err := h.seoService.Import(c.UserContext(), middleware.GetAdminSession(c), table, c.Body())
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, result)
}

// Template GET /api/v1/seo/:table/template
func (h *SEOHandler) Template(c *fiber.Ctx) error {
	table, err := models.ParseTable(c.Params("table"))
	if err != nil {
		return handleServiceError(c, err)
	}

	tpl, err := h.seoService.Template(table)
	if err != nil {
		return handleServiceError(c, err)
	}
	return utils.SuccessResponse(c, tpl)
}

// Snapshot POST /api/v1/seo/snapshots
func (h *SEOHandler) Snapshot(c *fiber.Ctx) error {
	ctx := c.UserContext()

	result, err := h.snapshotService.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Snapshot failed", "error", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.ErrCodeInternalError, err.Error(), result)
	}

	session := middleware.GetAdminSession(c)
	if session != nil {
		logger.InfoContext(ctx, "Snapshot triggered", "admin_id", session.AdminID, "run_id", result.RunID)
	}
	return utils.SuccessResponse(c, result)
}

// pathID keeps integer ids numeric so they bind as integers.
func pathID(raw string) any {
	if raw == "" {
		return nil
	}
	if n, ok := dto.AsInt64(raw); ok {
		return n
	}
	return raw
}
