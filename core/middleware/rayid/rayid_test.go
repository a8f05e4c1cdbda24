package rayid_test

import (
	"net/http/httptest"
	"testing"

	"unbound-webhook/core/logger"
	"unbound-webhook/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(seen *string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		*seen, _ = c.Locals(logger.RayIDKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestNew_GeneratesID(t *testing.T) {
	var seen string
	resp, err := newApp(&seen).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get(rayid.HeaderName)
	_, err = uuid.Parse(header)
	assert.NoError(t, err)
	assert.Equal(t, header, seen)
}

func TestNew_ReusesValidID(t *testing.T) {
	var seen string
	id := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, id)

	resp, err := newApp(&seen).Test(req)
	require.NoError(t, err)
	assert.Equal(t, id, resp.Header.Get(rayid.HeaderName))
	assert.Equal(t, id, seen)
}

func TestNew_ReplacesInvalidID(t *testing.T) {
	var seen string
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "not-a-uuid")

	resp, err := newApp(&seen).Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(rayid.HeaderName))
}
