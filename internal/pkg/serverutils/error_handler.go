package serverutils

import (
	"errors"

	"clinical-notes-be/internal/dto"
	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an error returned by a handler to an HTTP status.
func StatusFor(err error) int {
	var fiberErr *fiber.Error
	var missing *service.MissingInputError

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidRequest),
		errors.As(err, &missing):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// NewErrorHandler renders every error as {"error": "..."}.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := StatusFor(err)

		details := map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"status": code,
			"error":  err.Error(),
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", details)
		} else {
			log.Warn("HTTP", "Request rejected", details)
		}

		return ctx.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}
