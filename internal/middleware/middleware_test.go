package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.CORS(&config.Config{CORSOrigin: "http://localhost:3000"}))
	app.Use(middleware.VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})
	return app
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "X-Session-Id")

	resp, err := newApp().Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodDelete)
	assert.Equal(t, "X-Session-Id", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestCORSOtherOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestVersionMiddleware(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, middleware.APIVersion, resp.Header.Get("X-Api-Version"))

	tests := []struct {
		header string
		status int
		want   string
	}{
		{"0.1", fiber.StatusOK, "0.1.0"},
		{"v0.1.0", fiber.StatusOK, "0.1.0"},
		{"0", fiber.StatusOK, "0.0.0"},
		{"1.0.0", fiber.StatusBadRequest, ""},
		{"0.2", fiber.StatusBadRequest, ""},
		{"latest", fiber.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Api-Version", tt.header)
			resp, err := newApp().Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, middleware.APIVersion, resp.Header.Get("X-Api-Version"))
			if tt.want != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.want, string(body))
			}
		})
	}
}
