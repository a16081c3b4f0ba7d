package middleware

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-backoffice/domain/dto"
	"seo-backoffice/domain/models"
	"seo-backoffice/domain/services"
	"seo-backoffice/pkg/config"
)

type stubAuth struct {
	payloads []string
	session  *models.AdminSession
	err      error
}

func (s *stubAuth) Login(ctx context.Context, identifier, password string) (*dto.LoginResult, error) {
	return nil, errors.New("not used")
}

func (s *stubAuth) Authorize(ctx context.Context, payload string) (*models.AdminSession, error) {
	s.payloads = append(s.payloads, payload)
	return s.session, s.err
}

func TestAdminSession_RejectsBeforeHandler(t *testing.T) {
	auth := &stubAuth{err: services.ErrUnauthorized}
	reached := 0

	app := fiber.New()
	app.Post("/guarded", AdminSession(auth), func(c *fiber.Ctx) error {
		reached++
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/guarded", nil)
	req.Header.Set(AdminSessionHeader, `{"id_admin": 99}`)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, reached)
	assert.Equal(t, []string{`{"id_admin": 99}`}, auth.payloads)
}

func TestAdminSession_StoresSession(t *testing.T) {
	auth := &stubAuth{session: &models.AdminSession{AdminID: 4, VerifiedAt: time.Now()}}

	app := fiber.New()
	app.Get("/guarded", AdminSession(auth), func(c *fiber.Ctx) error {
		s := GetAdminSession(c)
		if s == nil {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.JSON(fiber.Map{"admin_id": s.AdminID})
	})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set(AdminSessionHeader, `{"id_admin": 4}`)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"admin_id": 4}`, string(body))
}

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestIDFromContext(c))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
}

func TestCorsAllowsSessionHeader(t *testing.T) {
	app := fiber.New()
	app.Use(CorsMiddleware(config.CORSConfig{AllowOrigins: "http://localhost:3000"}))
	app.Post("/", func(c *fiber.Ctx) error { return nil })

	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", AdminSessionHeader)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), AdminSessionHeader)
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"success":false,"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`, string(body))
}
