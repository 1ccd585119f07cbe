package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"fundoo-notes-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest parses the JSON body into req and runs struct validation.
// The first failing field produces the error message.
func ValidateRequest(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return apperror.ValidationFailed("Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if ok := errors.As(err, &verrs); ok && len(verrs) > 0 {
			return apperror.ValidationFailed(fieldMessage(verrs[0]))
		}
		return apperror.ValidationFailed("Invalid request body")
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid", field)
	}
}
