package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	ping    func(ctx context.Context) error
	service string
}

func NewHealthHandler(service string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping, service: service}
}

// Health GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	overall, database := "ok", "ok"
	status := fiber.StatusOK

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			overall, database = "degraded", "unavailable"
			status = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"status":   overall,
		"service":  h.service,
		"database": database,
	})
}
