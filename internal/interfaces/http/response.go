package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/andriansp/epc-catalog-api/internal/application/dto"
	"github.com/andriansp/epc-catalog-api/internal/domain"
)

// ok responde 200 con el sobre de éxito.
func ok(c *fiber.Ctx, message string, data any) error {
	return c.JSON(dto.APIResponse{Status: true, Message: message, Data: data})
}

// created responde 201 con el sobre de éxito.
func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{Status: true, Message: message, Data: data})
}

// fail responde con el sobre de error.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Status: false, Message: message})
}

// handleError mapea errores de dominio a códigos HTTP.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "recurso no encontrado")
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "entrada inválida")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "acceso denegado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, "el email ya está registrado")
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}
