package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"seo-backoffice/domain/services"
	"seo-backoffice/pkg/logger"
	"seo-backoffice/pkg/utils"
)

// handleServiceError maps domain errors onto HTTP status and envelope.
func handleServiceError(c *fiber.Ctx, err error) error {
	var storageErr *services.StorageError

	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "Admin non trouvé")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Mot de passe incorrect", nil)
	case errors.Is(err, services.ErrBackendUnavailable):
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.ErrCodeBackendUnavailable, "Erreur de connexion à la base de données", nil)
	case errors.Is(err, services.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, "Session admin invalide")
	case errors.Is(err, services.ErrTableNotAllowed):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeTableNotAllowed, "Table non autorisée", nil)
	case errors.Is(err, services.ErrActionNotAllowed):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeActionNotAllowed, "Action non autorisée", nil)
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil)
	case errors.As(err, &storageErr):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeStorage, storageErr.Error(), nil)
	default:
		logger.ErrorContext(c.UserContext(), "Unexpected error", "path", c.Path(), "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
