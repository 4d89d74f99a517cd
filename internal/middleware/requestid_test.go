package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averyk/go-web-tutorial/internal/middleware"
)

// newApp wires the middleware in front of a probe handler that reports what
// the middleware stored in the request's Locals.
func newApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals("requestID").(string)
		return c.SendString(id)
	})
	return app
}

func TestRequestIDIsGenerated(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(middleware.HeaderRequestID)
	require.NotEmpty(t, id)
	// The generated ID must be a valid UUID, not just any string.
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDFromClientIsKept(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "upstream-trace-42")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "upstream-trace-42", resp.Header.Get(middleware.HeaderRequestID))
}

func TestRequestIDIsVisibleToHandlers(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", string(body))
}
