// pkg/middleware/logger.go

package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"project-dashboard/pkg/contextkeys"
)

// InjectLogger добавляет в контекст логгер с request_id и пишет строку о запросе.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := context.WithValue(c.Request().Context(), contextkeys.LoggerKey, reqLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			start := time.Now()
			err := next(c)
			reqLogger.Debug("HTTP",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}

// LoggerFromCtx возвращает логгер запроса или fallback.
func LoggerFromCtx(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(contextkeys.LoggerKey).(*zap.Logger); ok {
		return l
	}
	return fallback
}
