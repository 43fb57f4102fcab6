package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/propelhq/propel-be/internal/middleware"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseAndValidate decodes the request body into out and runs struct
// validation. Failures surface as a 400 with per-field messages through the
// central error handler.
func parseAndValidate(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string, len(validationErrors))
			for _, fe := range validationErrors {
				fields[strings.ToLower(fe.Field())] = validationMessage(fe)
			}
			return middleware.NewValidationError(fields)
		}
		return middleware.BadRequest("Invalid request data")
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
