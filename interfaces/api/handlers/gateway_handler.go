package handlers

import (
	"github.com/gofiber/fiber/v2"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/services"
	"seo-backoffice/interfaces/api/middleware"
	"seo-backoffice/pkg/logger"
	"seo-backoffice/pkg/utils"
)

type GatewayHandler struct {
	gateway services.TableGatewayService
}

func NewGatewayHandler(gateway services.TableGatewayService) *GatewayHandler {
	return &GatewayHandler{gateway: gateway}
}

// Execute POST /api/v1/admin
func (h *GatewayHandler) Execute(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.GatewayRequest
	if err := dto.DecodeJSON(c.Body(), &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	cmd, err := req.ToCommand()
	if err != nil {
		logger.WarnContext(ctx, "Gateway command rejected", "table", req.Table, "action", req.Action)
		return handleServiceError(c, err)
	}

	result, err := h.gateway.Execute(ctx, middleware.GetAdminSession(c), cmd)
	if err != nil {
		return handleServiceError(c, err)
	}

	if !result.HasRows {
		return utils.AckResponse(c)
	}
	return utils.SuccessResponse(c, nonNilRows(result.Rows))
}

func nonNilRows(rows []map[string]any) []map[string]any {
	if rows == nil {
		return []map[string]any{}
	}
	return rows
}
