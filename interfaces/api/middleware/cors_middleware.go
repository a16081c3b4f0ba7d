package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"seo-backoffice/pkg/config"
)

func CorsMiddleware(cfg config.CORSConfig) fiber.Handler {
	origins := strings.TrimSpace(cfg.AllowOrigins)
	if origins == "" {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,HEAD",
		AllowHeaders:     "Origin,Content-Type,Accept,X-Requested-With," + AdminSessionHeader,
		ExposeHeaders:    "Content-Length,Content-Disposition," + RequestIDHeader,
		AllowCredentials: origins != "*", // fiber ไม่ยอมให้ใช้ credentials คู่กับ "*"
	})
}
