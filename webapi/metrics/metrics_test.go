package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	t.Parallel()
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/messages/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", m.Handler())

	for _, id := range []string{"1", "2", "3"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/messages/"+id, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.InDelta(t, 3, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/messages/:id", "200")), 0)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "socialmedia_http_requests_total")
}

func TestNewIsolatedRegistries(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}
