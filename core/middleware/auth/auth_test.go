package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestNew(t *testing.T) {
	t.Run("ValidKey", func(t *testing.T) {
		app := newApp(Config{ApiKey: "secret"})
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "secret")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("InvalidKey", func(t *testing.T) {
		app := newApp(Config{ApiKey: "secret"})
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "wrong")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MissingKey", func(t *testing.T) {
		app := newApp(Config{ApiKey: "secret"})
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("DisabledWhenEmpty", func(t *testing.T) {
		app := newApp(Config{})
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
