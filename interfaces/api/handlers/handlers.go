package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"seo-backoffice/domain/services"
	"seo-backoffice/interfaces/api/middleware"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService     services.AuthService
	GatewayService  services.TableGatewayService
	SEOService      services.SEOService
	SnapshotService services.SnapshotService
	AppName         string
	Ping            func(ctx context.Context) error
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler    *AuthHandler
	GatewayHandler *GatewayHandler
	SEOHandler     *SEOHandler
	HealthHandler  *HealthHandler
	SessionGuard   fiber.Handler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		AuthHandler:    NewAuthHandler(s.AuthService),
		GatewayHandler: NewGatewayHandler(s.GatewayService),
		SEOHandler:     NewSEOHandler(s.SEOService, s.SnapshotService),
		HealthHandler:  NewHealthHandler(s.AppName, s.Ping),
		SessionGuard:   middleware.AdminSession(s.AuthService),
	}
}
