package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/propelhq/propel-be/internal/domain"
)

type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
}

// ValidationError carries per-field messages from input validation to the
// central error handler.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid request data"
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ErrorHandler maps domain errors onto the API error taxonomy. Unknown
// errors become a generic 500 so internals never leak to clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid request data",
			Errors:  validationErr.Fields,
		})
	}

	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrProposalNotFound),
		errors.Is(err, domain.ErrBadgeNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrUnknownCRMProvider):
		code = fiber.StatusNotFound
		message = err.Error()
		errorCode = "NOT_FOUND"
	case errors.Is(err, domain.ErrClientInUse),
		errors.Is(err, domain.ErrTemplateInUse):
		code = fiber.StatusConflict
		message = err.Error()
		errorCode = "CONFLICT"
	case errors.Is(err, domain.ErrUnknownActivityType),
		errors.Is(err, domain.ErrClientEmailMissing),
		errors.Is(err, domain.ErrInvalidStatus):
		code = fiber.StatusBadRequest
		message = err.Error()
		errorCode = "BAD_REQUEST"
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message

			switch code {
			case fiber.StatusBadRequest:
				errorCode = "BAD_REQUEST"
			case fiber.StatusNotFound:
				errorCode = "NOT_FOUND"
			case fiber.StatusConflict:
				errorCode = "CONFLICT"
			case fiber.StatusUnprocessableEntity:
				errorCode = "VALIDATION_ERROR"
			}
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}
