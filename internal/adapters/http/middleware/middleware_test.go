package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"nautica-prime/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{AppMode: "dev"}
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	Setup(app, cfg)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"pong": true})
	})
	return app
}

func TestSetup_SecurityHeaders(t *testing.T) {
	app := newMiddlewareApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
}

func TestCustomErrorHandler_ErroEnvelope(t *testing.T) {
	cfg := &config.Config{AppMode: "dev"}
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	Setup(app, cfg)
	app.Get("/quebra", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusNotFound, "Recurso não encontrado")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quebra", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"erro":"Recurso não encontrado"}`, string(body))
}
