package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperr "github.com/atharv2608/alphaware-task-backend/internal/errors"
)

// StatusTokenStale mirrors the non-standard 498 used for a valid token whose
// subject no longer exists.
const StatusTokenStale = 498

type APIResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
}

func respondOK(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(APIResponse{
		Success:    true,
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		// Store internals and unexpected failures never reach the client.
		message = "Something went wrong"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrMissingFields),
		errors.Is(err, apperr.ErrInvalidContract):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrMissingToken),
		errors.Is(err, apperr.ErrInvalidToken),
		errors.Is(err, apperr.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrStaleToken):
		return StatusTokenStale
	case errors.Is(err, apperr.ErrAdminOnly),
		errors.Is(err, apperr.ErrAdminCannotApply),
		errors.Is(err, apperr.ErrNotJobOwner):
		return fiber.StatusForbidden
	case errors.Is(err, apperr.ErrUserNotFound),
		errors.Is(err, apperr.ErrJobNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrUserAlreadyExists),
		errors.Is(err, apperr.ErrAlreadyApplied):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
