package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"actapi/internal/document"
	"actapi/internal/form"
	"actapi/internal/http/middleware"
	"actapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(middleware.RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}

// writeError writes a standardized JSON error response.
// message must be safe to show; internal error text never goes here.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError maps service and domain errors to HTTP responses.
// Only validation messages are passed through to the client.
func writeServiceError(c *fiber.Ctx, err error) error {
	var (
		verr *form.ValidationError
		rerr *document.RenderError
	)
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_FORM", verr.Error())
	case errors.As(err, &rerr):
		return writeError(c, fiber.StatusInternalServerError, "RENDER_FAILED", "acta could not be rendered")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "acta not found")
	case errors.Is(err, service.ErrArchiveDisabled):
		return writeError(c, fiber.StatusNotImplemented, "ARCHIVE_DISABLED", "acta archive is disabled")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "BODY_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
