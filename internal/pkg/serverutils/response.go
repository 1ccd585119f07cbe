package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes the standard envelope. Extra keys (e.g. "Notes",
// "Label") are merged next to status and message.
func SuccessResponse(ctx *fiber.Ctx, status int, message string, data fiber.Map) error {
	body := fiber.Map{
		"status":  status,
		"message": message,
	}
	for k, v := range data {
		body[k] = v
	}
	return ctx.Status(status).JSON(body)
}

func ErrorResponse(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"status":  status,
		"message": message,
	})
}
