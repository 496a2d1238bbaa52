package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
)

// internalError responde 500 con un mensaje genérico. El error real se
// registra con su detalle completo pero nunca viaja al cliente: el texto de
// un fallo de almacenamiento o de transacción es información interna.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Error().
		Err(err).
		Str("op", op).
		Str("path", c.Path()).
		Msg("error interno atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}
