package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve los agregados del inventario.
// GET /dashboard/stats
//
// Respuesta: DashboardStatsDTO (total_produtos, estoque_baixo, valor_inventario, total_clientes).
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}
