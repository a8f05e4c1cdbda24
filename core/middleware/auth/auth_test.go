package auth_test

import (
	"net/http/httptest"
	"testing"

	"unbound-webhook/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		header string
		path   string
		want   int
	}{
		{"Disabled", "", "", "/records", fiber.StatusOK},
		{"Missing key", "secret", "", "/records", fiber.StatusUnauthorized},
		{"Wrong key", "secret", "nope", "/records", fiber.StatusUnauthorized},
		{"Valid key", "secret", "secret", "/records", fiber.StatusOK},
		{"Skipped path", "secret", "", "/healthz", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(auth.New(auth.Config{ApiKey: tt.apiKey, Skip: []string{"/healthz"}}))
			app.Get("/*", func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
