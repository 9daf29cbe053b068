package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logging logs every request with its latency and request id.
func Logging(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		status := c.Response().StatusCode()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}
		if id, ok := c.Locals(requestIDKey).(string); ok {
			fields = append(fields, zap.String("request_id", id))
		}

		if err != nil {
			logger.Error("request failed", append(fields, zap.Error(err))...)
			return err
		}
		logger.Info("request", fields...)
		return nil
	}
}
