package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
)

// statusFor traduce la clase del error de dominio a status y código.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusUnprocessableEntity, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, "CONFLICT"
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusServiceUnavailable, "UNAVAILABLE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError escribe el cuerpo {code, message}. Los 5xx no exponen el detalle interno.
func writeError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().Err(err).
			Str("path", c.Path()).
			Msg("error no controlado")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: domain.Message(err)})
}

// ErrorHandler handler global de fiber: *fiber.Error conserva su status, el resto pasa por writeError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: strconv.Itoa(fe.Code), Message: fe.Message})
	}
	return writeError(c, err)
}

// parseBody decodifica JSON; cuerpo inválido => 422.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.Validation("corpo inválido")
	}
	return nil
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Validation("id inválido")
	}
	return id, nil
}
