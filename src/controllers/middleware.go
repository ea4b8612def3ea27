package controllers

import (
	"time"

	"go-storefront/src/infrastructure/log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger logs every request/response pair with a correlation id.
func RequestLogger(logger log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		ctx := logger.WithCorrelationID(c.Context(), uuid.NewString())

		err := c.Next()

		logger.RequestResponse(ctx, &log.Field{
			URL:            c.OriginalURL(),
			HostName:       c.Hostname(),
			HTTPMethod:     c.Method(),
			HTTPStatusCode: c.Response().StatusCode(),
			Duration:       time.Since(start).Milliseconds(),
			Message:        "HTTP request completed",
		})

		return err
	}
}
