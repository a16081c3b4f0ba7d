package middleware

import (
	"github.com/gofiber/fiber/v2"

	"seo-backoffice/domain/models"
	"seo-backoffice/domain/services"
	"seo-backoffice/pkg/utils"
)

const (
	AdminSessionHeader = "X-Admin-Session"
	adminSessionKey    = "admin_session"
)

// AdminSession checks the serialized session header against the admin
// table before any guarded handler runs.
func AdminSession(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := authService.Authorize(c.UserContext(), c.Get(AdminSessionHeader))
		if err != nil || session == nil {
			return utils.UnauthorizedResponse(c, "Session admin invalide")
		}

		c.Locals(adminSessionKey, session)
		return c.Next()
	}
}

// GetAdminSession returns the verified session, or nil outside guarded routes.
func GetAdminSession(c *fiber.Ctx) *models.AdminSession {
	if s, ok := c.Locals(adminSessionKey).(*models.AdminSession); ok {
		return s
	}
	return nil
}
