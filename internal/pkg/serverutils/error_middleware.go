package serverutils

import (
	"errors"

	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler builds the Fiber error handler. Domain errors keep their
// status and message; anything else is logged and hidden behind a 500.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if appErr := apperror.From(err); appErr != nil {
			if appErr.Status >= fiber.StatusInternalServerError {
				log.Error("http", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
			}
			return ErrorResponse(ctx, appErr.Status, appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ErrorResponse(ctx, fiberErr.Code, fiberErr.Message)
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ErrorResponse(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}
