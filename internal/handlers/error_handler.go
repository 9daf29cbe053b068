package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/duetalk/chat-backend/internal/apperr"
)

// ErrorHandler maps the error taxonomy to the wire contract: validation,
// conflict and auth failures become 400 with their message; store failures
// and anything unclassified become 500 with a generic body, with the detail
// kept in the server log only. Every error body has the shape {"error": msg}.
func ErrorHandler(logger *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			switch ae.Kind {
			case apperr.Validation, apperr.Conflict, apperr.Auth:
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ae.Msg})
			default:
				logger.Errorw("store error",
					"method", c.Method(), "path", c.Path(), "error", ae)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		logger.Errorw("unhandled error",
			"method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
