package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Pinger dependencia externa verificable (Postgres, Redis).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler liveness y readiness.
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler recibe las dependencias por nombre; un Pinger nil cuenta como "not configured".
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthResponse respuesta de /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse respuesta de /ready.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Health GET /health: 200 mientras el proceso responda.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}

// Ready GET /ready: 200 solo si todas las dependencias responden; si no, 503.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	resp := ReadinessResponse{Status: "ready", Checks: make(map[string]string, len(h.checks))}
	status := fiber.StatusOK
	for name, p := range h.checks {
		if p == nil {
			resp.Checks[name] = "not configured"
			continue
		}
		if err := p.Ping(ctx); err != nil {
			resp.Checks[name] = "error: " + err.Error()
			resp.Status = "not_ready"
			status = fiber.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	if status != fiber.StatusOK {
		zerolog.Ctx(c.UserContext()).Warn().Interface("checks", resp.Checks).Msg("readiness check fallido")
	}
	return c.Status(status).JSON(resp)
}
