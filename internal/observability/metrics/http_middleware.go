package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Middleware instrumenta las peticiones con métricas Prometheus.
// Usa la ruta registrada (/produtos/:id) para no explotar la cardinalidad.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		ObserveHTTPRequest(c.Method(), c.Route().Path, strconv.Itoa(status), time.Since(start))
		return err
	}
}

// Handler expone /metrics en formato Prometheus.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
