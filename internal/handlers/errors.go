package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

// writeError maps the error taxonomy to status codes and the {errors}
// envelope: validation failures carry the full violation list, domain
// errors a plain message, and anything unexpected is logged with the
// detail withheld from the client.
func writeError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Errors: verr.Violations})
	}

	switch {
	case errors.Is(err, middleware.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Errors: "Unauthorized"})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Errors: err.Error()})
	case errors.Is(err, services.ErrContactNotFound),
		errors.Is(err, services.ErrAddressNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Errors: err.Error()})
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrContactHasAddresses):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Errors: err.Error()})
	default:
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Errors: "Internal Server Error"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Errors: "Invalid request body"})
}

// paramID parses a positive numeric path parameter; anything else is a
// field-level validation failure named after the request field.
func paramID(c *fiber.Ctx, name, field string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, &validation.Error{Violations: []validation.FieldViolation{
			{Field: field, Message: "must be a positive number"},
		}}
	}
	return uint(id), nil
}
