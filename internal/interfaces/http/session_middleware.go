package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/auth"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/observability/metrics"
)

// LocalSession clave de Locals con la *entity.Session resuelta.
const LocalSession = "session"

// SessionMiddleware resuelve la cookie session_id y carga la sesión en Locals.
// Sin cookie o con sesión expirada responde 401; store caído responde 503.
func SessionMiddleware(sessions *auth.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := sessions.Resolve(c.UserContext(), c.Cookies(SessionCookieName))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				metrics.ObserveDenied("unauthenticated")
			}
			return writeError(c, err)
		}
		c.Locals(LocalSession, session)
		return c.Next()
	}
}

// RequireRole exige que la sesión tenga exactamente el rol indicado (403 si no).
// Debe usarse DESPUÉS de SessionMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.Authorize(GetSession(c), role); err != nil {
			if errors.Is(err, domain.ErrForbidden) {
				metrics.ObserveDenied("forbidden")
			} else {
				metrics.ObserveDenied("unauthenticated")
			}
			return writeError(c, err)
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (nil antes de SessionMiddleware).
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}
