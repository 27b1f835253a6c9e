package utils

import (
	"errors"

	apperrors "hawamoni/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": message})
}

// NotFound sends a JSON error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, fiber.Map{"error": message})
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": message})
}

// DomainError maps a coded domain error onto its HTTP status. Validation
// codes come back as 400 so the caller can re-show the field; generation
// and backend failures are server-side.
func DomainError(c *fiber.Ctx, err error) error {
	var derr *apperrors.DomainError
	if !errors.As(err, &derr) {
		return InternalError(c, "internal server error")
	}

	status := fiber.StatusBadRequest
	switch derr.Code {
	case apperrors.ErrSessionNotFound.Code, apperrors.ErrLoginRedirected.Code:
		status = fiber.StatusUnauthorized
	case "GROUP_NOT_FOUND":
		status = fiber.StatusNotFound
	case apperrors.ErrReferenceGeneration.Code,
		apperrors.ErrEncodeFailed.Code,
		apperrors.ErrQRRenderFailed.Code,
		apperrors.ErrBackendUnreachable.Code:
		status = fiber.StatusInternalServerError
	}

	payload := fiber.Map{"error": derr.Message, "code": derr.Code}
	if derr.Err != nil && status == fiber.StatusInternalServerError {
		payload["details"] = derr.Err.Error()
	}
	return Respond(c, status, payload)
}
