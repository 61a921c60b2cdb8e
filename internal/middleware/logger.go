package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger 每個 request 一行結構化 log；錯誤先交給 HTTPErrorHandler 才能記到真正的狀態碼
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path

			if err := next(c); err != nil {
				c.Error(err)
			}

			if path == "/api/ping" || path == "/metrics" {
				return nil
			}

			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("path", path),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("client_ip", c.RealIP()),
			}
			if claims, ok := ClaimsFromContext(c); ok {
				fields = append(fields, zap.Int("user_id", claims.UserID))
			}
			if c.Response().Status >= 500 {
				logger.Error("request", fields...)
			} else {
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}
