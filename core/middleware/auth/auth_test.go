package auth_test

import (
	"net/http/httptest"
	"testing"

	"factory-planner/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/targets", ok)
	app.Get("/health", ok)
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		key    string
		status int
	}{
		{"Disabled", auth.Config{}, "/targets", "", 200},
		{"Valid", auth.Config{ApiKey: "secret"}, "/targets", "secret", 200},
		{"Missing", auth.Config{ApiKey: "secret"}, "/targets", "", 401},
		{"Wrong", auth.Config{ApiKey: "secret"}, "/targets", "secreT", 401},
		{"Skipped", auth.Config{ApiKey: "secret", Skip: []string{"/health"}}, "/health", "", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				req.Header.Set(auth.HeaderName, tt.key)
			}
			resp, err := newApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
