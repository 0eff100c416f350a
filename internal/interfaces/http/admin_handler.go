package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/usecase"
)

// AdminHandler gestión de administradores (solo admin).
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Create godoc
// @Summary      Crear administrador
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdminRequest  true  "username, password"
// @Success      201   {object}  dto.AdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /admins [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AdminHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete borra un administrador; el admin de la sesión no puede borrarse a sí mismo.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id, GetSession(c).UserID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
