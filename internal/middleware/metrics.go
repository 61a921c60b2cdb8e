package middleware

import (
	"strconv"
	"time"

	"freelance-hub/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics 以路由 pattern 為 label，避免 path 參數造成 label 爆量
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.ObserveHTTP(
				c.Request().Method,
				path,
				strconv.Itoa(c.Response().Status),
				time.Since(start).Seconds(),
			)
			return nil
		}
	}
}
