package middleware

import (
	"time"

	"seguridad/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request durations by route template.
type MetricsMiddleware struct {
	skipPath string
}

// NewMetricsMiddleware creates a new metrics middleware; requests to skipPath are not recorded.
func NewMetricsMiddleware(skipPath string) *MetricsMiddleware {
	return &MetricsMiddleware{skipPath: skipPath}
}

// Handle observes the request after the handler and error handler have run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == m.skipPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler commit the response so the final status is observed.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
