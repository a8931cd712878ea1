package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// actaRoutes mirrors the shape of the acta API without its services.
func actaRoutes(t *testing.T) (*fiber.App, *PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	pm, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(pm.Handler())

	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	actas := app.Group("/actas")
	actas.Post("/", ok)
	actas.Post("/send", ok)
	actas.Get("/:id/download", func(c *fiber.Ctx) error {
		return c.Redirect("http://minio.local/actas/"+c.Params("id")+".pdf", fiber.StatusFound)
	})
	actas.Delete("/:id", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "acta not found")
	})
	app.Get("/metrics", ok)

	return app, pm, reg
}

func TestPrometheusMiddleware_ActaRoutes(t *testing.T) {
	app, pm, _ := actaRoutes(t)

	tests := []struct {
		method string
		target string
		route  string
		status int
	}{
		{http.MethodPost, "/actas/send", "/actas/send", http.StatusOK},
		{http.MethodGet, "/actas/7f9c/download", "/actas/:id/download", http.StatusFound},
		{http.MethodGet, "/actas/a1b2/download", "/actas/:id/download", http.StatusFound},
		{http.MethodDelete, "/actas/7f9c", "/actas/:id", http.StatusNotFound},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode, tt.target)
	}

	// concrete ids collapse into the route pattern
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.requestCount.WithLabelValues(http.MethodPost, "/actas/send", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(pm.requestCount.WithLabelValues(http.MethodGet, "/actas/:id/download", "302")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.requestCount.WithLabelValues(http.MethodDelete, "/actas/:id", "404")))
	assert.Equal(t, 3, testutil.CollectAndCount(pm.requestCount))
	assert.Equal(t, 3, testutil.CollectAndCount(pm.requestDuration))
}

func TestPrometheusMiddleware_DurationBuckets(t *testing.T) {
	app, _, reg := actaRoutes(t)

	for i := 0; i < 2; i++ {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/actas/x/download", nil))
		require.NoError(t, err)
	}

	mfs, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range mfs {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		found = true
		require.Len(t, mf.GetMetric(), 1)
		h := mf.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(2), h.GetSampleCount())

		bounds := make([]float64, 0, len(h.GetBucket()))
		for _, b := range h.GetBucket() {
			bounds = append(bounds, b.GetUpperBound())
		}
		assert.Equal(t, durationBuckets, bounds)
	}
	assert.True(t, found, "duration histogram not gathered")
}

func TestPrometheusMiddleware_SkipsMetricsEndpoint(t *testing.T) {
	app, pm, _ := actaRoutes(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Zero(t, testutil.CollectAndCount(pm.requestCount))
	assert.Zero(t, testutil.CollectAndCount(pm.requestDuration))
}

func TestPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}
