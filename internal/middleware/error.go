// Package middleware contains the shared Fiber middlewares.
package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ratescope/ratescope/internal/logging"
	"github.com/ratescope/ratescope/internal/models"
	"github.com/ratescope/ratescope/internal/services"
)

// ErrorHandler returns a custom error handler middleware
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		detail := models.ErrorDetail{Code: "ERROR", Message: "Internal Server Error"}

		var fiberErr *fiber.Error
		var svcErr *services.ServiceError
		switch {
		case errors.As(err, &svcErr):
			code = StatusForServiceError(svcErr)
			detail.Code = svcErr.Code
			detail.Message = svcErr.Message
			detail.Details = svcErr.Details
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			detail.Message = fiberErr.Message
		}

		logger.Error("Request error",
			"path", c.Path(),
			"method", c.Method(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(models.ErrorResponse{Error: detail})
	}
}

// StatusForServiceError maps a service error code to an HTTP status.
func StatusForServiceError(err *services.ServiceError) int {
	switch err.Code {
	case services.CodeNoData:
		return fiber.StatusNotFound
	case services.CodeLoadFailed, services.CodeSaveFailed:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
