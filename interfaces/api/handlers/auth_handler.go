package handlers

import (
	"github.com/gofiber/fiber/v2"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/services"
	"seo-backoffice/pkg/logger"
	"seo-backoffice/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login POST /api/v1/admin/auth
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	result, err := h.authService.Login(ctx, req.Pseudo, req.Password)
	if err != nil {
		logger.WarnContext(ctx, "Login failed", "login", req.Pseudo, "reason", err.Error())
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		Success:      true,
		Admin:        result.Admin,
		SessionToken: result.SessionToken,
		Session:      result.Session,
	})
}
