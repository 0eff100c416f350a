package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/auth"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/observability/metrics"
)

// AuthHandler maneja registro, login, logout y perfil.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, password"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Abre una sesión y la devuelve en la cookie session_id.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	token, _, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		metrics.ObserveLogin("usuario", "failure")
		return writeError(c, err)
	}
	metrics.ObserveLogin("usuario", "success")
	setSessionCookie(c, h.cookie, token)
	return c.JSON(dto.MessageResponse{Msg: "logado"})
}

// CustomerLogin godoc
// @Summary      Login del portal de clientes
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerLoginRequest  true  "email, senha"
// @Success      200   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /clientes/login [post]
func (h *AuthHandler) CustomerLogin(c *fiber.Ctx) error {
	var in dto.CustomerLoginRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	token, _, err := h.uc.CustomerLogin(c.UserContext(), in)
	if err != nil {
		metrics.ObserveLogin("cliente", "failure")
		return writeError(c, err)
	}
	metrics.ObserveLogin("cliente", "success")
	setSessionCookie(c, h.cookie, token)
	return c.JSON(dto.MessageResponse{Msg: "Login realizado"})
}

// Logout borra la sesión (si existe) y la cookie. Nunca falla por sesión inexistente.
// La cookie se limpia aunque el store no responda.
// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c, h.cookie)
	if err := h.uc.Logout(c.UserContext(), c.Cookies(SessionCookieName)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Msg: "deslogado"})
}

// Profile devuelve los datos de la sesión actual.
// GET /profile (requiere sesión)
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	s := GetSession(c)
	return c.JSON(dto.ProfileResponse{User: dto.SessionResponse{
		UserID:   s.UserID,
		Username: s.Username,
		Role:     s.Role,
	}})
}

// AdminArea saludo para administradores.
// GET /admin (requiere rol admin)
func (h *AuthHandler) AdminArea(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Msg: "Olá " + GetSession(c).Username + ", você é admin"})
}
