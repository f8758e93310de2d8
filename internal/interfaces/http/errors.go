package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/miinventory-api/internal/application/dto"
	"github.com/jhoicas/miinventory-api/internal/domain"
)

// writeError traduce errores de dominio a status + dto.ErrorResponse.
// El orden importa: ErrStockNotFound antes que ErrNotFound.
func writeError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", ve.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "datos inválidos")
	case errors.Is(err, domain.ErrStockNotFound):
		return fail(c, fiber.StatusNotFound, "STOCK_NOT_FOUND", "no existe stock para el producto en la bodega")
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "el recurso ya existe")
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", "el recurso está referenciado por otros registros")
	}
	// el detalle queda en el log; el cliente solo recibe el request id
	rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	log.Error().Err(err).Str("request_id", rid).Str("path", c.Path()).Msg("error no controlado")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
}

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func badBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

func notFound(c *fiber.Ctx, message string) error {
	return fail(c, fiber.StatusNotFound, "NOT_FOUND", message)
}

// pageParams lee limit/offset: limit por defecto 20, máximo 100; offset >= 0.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
