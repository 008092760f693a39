package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a UUID, echoed in the response
// header and attached to the per-request logger fields.
func RequestID(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Locals("requestID", requestID)
		c.Set(RequestIDHeader, requestID)

		err := c.Next()
		if err != nil {
			logger.Warn("Request failed",
				zap.String("request_id", requestID),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return err
	}
}
