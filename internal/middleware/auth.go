// Package middleware provides request processing middleware for the
// fiber app.
package middleware

import (
	"hawamoni/internal/services/auth"
	"hawamoni/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie carries the session id between requests.
const SessionCookie = "hawamoni_session"

// SessionLocal is the ctx local under which the loaded session is stored.
const SessionLocal = "session"

// AuthMiddleware guards routes behind an authenticated session. The
// session id comes from the session cookie or the X-Session-ID header;
// the access token stored against it must not have expired.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	sessionID := c.Cookies(SessionCookie)
	if sessionID == "" {
		sessionID = c.Get("X-Session-ID")
	}
	if sessionID == "" {
		return utils.Unauthorized(c, "missing session")
	}

	session, ok, err := m.authService.Current(c.UserContext(), sessionID)
	if err != nil {
		return utils.Unauthorized(c, "no active session")
	}
	if !ok {
		return utils.Unauthorized(c, "session expired")
	}

	c.Locals(SessionLocal, session)
	return c.Next()
}
