package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// LocalRequestID clave de Locals donde el middleware requestid deja el id.
const LocalRequestID = "requestid"

// RequestLogger registra cada petición (método, ruta, status, latencia, request id)
// y deja un sublogger con el request id en c.UserContext().
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID, _ := c.Locals(LocalRequestID).(string)

		reqLog := log.With().Str("request_id", reqID).Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status, _ = statusFor(err)
			}
		}

		var evt *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = reqLog.Error()
		case status >= fiber.StatusBadRequest:
			evt = reqLog.Warn()
		default:
			evt = reqLog.Info()
		}
		evt.Str("method", c.Method()).
			Str("route", c.Route().Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
