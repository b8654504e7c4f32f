package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRequest(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func resetRegisteredMetrics(t *testing.T, conf MetricsConfig) {
	t.Helper()
	httpMetrics, err := registerHTTPMetrics(conf)
	require.NoError(t, err)
	httpMetrics.Reset()
}

func TestPrometheusMiddleware(t *testing.T) {
	resetRegisteredMetrics(t, DefaultMetricsConfig)
	e := echo.New()
	e.Use(Metrics())

	e.GET("/products/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("id"))
	})
	e.GET("/export.csv", func(c echo.Context) error {
		return c.String(http.StatusInternalServerError, "broken")
	})
	e.POST("/products", func(c echo.Context) error {
		return fmt.Errorf("upstream exploded")
	})

	for i := 1; i <= 10; i++ {
		makeRequest(e, http.MethodGet, fmt.Sprintf("/products/%d", i))
	}
	for i := 0; i < 4; i++ {
		makeRequest(e, http.MethodGet, "/export.csv")
		makeRequest(e, http.MethodPost, "/products")
	}
	for i := 0; i < 3; i++ {
		makeRequest(e, http.MethodGet, fmt.Sprintf("/random-%d", i))
	}

	rec := makeRequest(e, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `console_http_request_duration_seconds_count{code="200",method="GET",path="/products/:id"} 10`)
	assert.Contains(t, body, `console_http_request_duration_seconds_count{code="500",method="GET",path="/export.csv"} 4`)
	assert.Contains(t, body, `console_http_request_duration_seconds_count{code="500",method="POST",path="/products"} 4`)
	assert.Contains(t, body, `console_http_request_duration_seconds_count{code="404",method="GET",path="/not-found"} 3`)
}

func TestRegisterHTTPMetricsTwice(t *testing.T) {
	first, err := registerHTTPMetrics(DefaultMetricsConfig)
	require.NoError(t, err)
	second, err := registerHTTPMetrics(DefaultMetricsConfig)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestNormalizeHTTPStatus(t *testing.T) {
	tests := map[int]string{
		101: "1xx",
		200: "2xx",
		303: "3xx",
		404: "4xx",
		499: "4xx",
		502: "5xx",
	}
	for status, want := range tests {
		assert.Equal(t, want, normalizeHTTPStatus(status), status)
	}
}
