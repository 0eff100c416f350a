package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/analytics"
)

// ReportHandler sirve el relatorio de inventario.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Relatorio de inventario en PDF
// @Tags         produtos
// @Produce      application/pdf
// @Success      200
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /produtos/relatorio.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.InventoryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="relatorio-inventario.pdf"`)
	return c.Send(pdf)
}
