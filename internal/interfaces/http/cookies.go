package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName nombre de la cookie que lleva el token de sesión.
const SessionCookieName = "session_id"

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

func setSessionCookie(c *fiber.Ctx, cfg CookieConfig, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx, cfg CookieConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
