package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
)

// respond envuelve data en {"success": true, "data": …}.
func respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.SuccessResponse{Success: true, Data: data})
}

// fail responde {"success": false, "code": …, "message": …}.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Message: message})
}

// writeError traduce los errores de dominio a HTTP. Los 5xx no exponen el detalle al cliente.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrStorage):
		log.Error().Err(err).Str("path", c.Path()).Str("request_id", GetRequestID(c)).Msg("error de almacenamiento")
		return fail(c, fiber.StatusInternalServerError, "STORAGE", "error de almacenamiento, intente de nuevo")
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("request_id", GetRequestID(c)).Msg("error interno")
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
	}
}

func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func invalidID(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_ID", "id debe ser un entero positivo")
}
