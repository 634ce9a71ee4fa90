package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/pkg/logger"
	"github.com/artem13815/recruit/pkg/security/jwt"
)

// RequestLogger writes one line per request after the handler chain ran.
func RequestLogger(log *zap.Logger) fiber.Handler {
	log = logger.OrNop(log)
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// render now so the logged status is final
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if actor, ok := jwt.ActorFrom(c); ok {
			fields = append(fields, zap.String("user_id", actor.UserID.String()))
		}
		log.Info("http request", fields...)
		return nil
	}
}
