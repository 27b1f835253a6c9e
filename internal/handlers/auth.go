package handlers

import (
	"errors"
	"log"
	"time"

	"hawamoni/internal/config"
	apperrors "hawamoni/internal/errors"
	"hawamoni/internal/middleware"
	"hawamoni/internal/models"
	"hawamoni/internal/services/auth"
	"hawamoni/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler proxies sign-in, sign-up and token refresh to the remote
// backend and manages the local session around them.
type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges credentials with the backend. Backend redirects are
// never surfaced; they become a fixed 401 pointing at federated sign-in.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input models.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	session, res, err := h.authService.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, apperrors.ErrLoginRedirected) {
			return utils.Respond(c, fiber.StatusUnauthorized, fiber.Map{
				"message": apperrors.ErrLoginRedirected.Message,
			})
		}
		log.Printf("login proxy failed: %v", err)
		return utils.DomainError(c, err)
	}

	// Non-2xx backend responses pass through untouched.
	if session == nil {
		if res.ContentType != "" {
			c.Set(fiber.HeaderContentType, res.ContentType)
		}
		return c.Status(res.Status).Send(res.Body)
	}

	h.setSessionCookie(c, session.ID)
	return utils.Success(c, fiber.Map{
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
		"user":          fiber.Map{"email": session.Email},
	})
}

// Register forwards the registration body unchanged and copies the
// backend response back.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	res, err := h.authService.Register(c.UserContext(), c.Body())
	if err != nil {
		log.Printf("register proxy failed: %v", err)
		return utils.DomainError(c, err)
	}
	if res.ContentType != "" {
		c.Set(fiber.HeaderContentType, res.ContentType)
	}
	return c.Status(res.Status).Send(res.Body)
}

// Refresh exchanges the stored refresh token for a new pair.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	sessionID := c.Cookies(middleware.SessionCookie)
	if sessionID == "" {
		return utils.Unauthorized(c, "missing session")
	}

	pair, err := h.authService.Refresh(c.UserContext(), sessionID)
	if err != nil {
		log.Printf("token refresh failed: %v", err)
		return utils.Unauthorized(c, "Invalid refresh token")
	}
	return utils.Success(c, fiber.Map{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Session reports whether the caller has a live session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sessionID := c.Cookies(middleware.SessionCookie)
	if sessionID == "" {
		return utils.Success(c, fiber.Map{"authenticated": false})
	}

	session, ok, err := h.authService.Current(c.UserContext(), sessionID)
	if err != nil || !ok {
		return utils.Success(c, fiber.Map{"authenticated": false})
	}
	return utils.Success(c, fiber.Map{
		"authenticated": true,
		"user":          fiber.Map{"email": session.Email},
	})
}

// Logout clears the session server-side and expires the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(middleware.SessionCookie)
	if sessionID != "" {
		if err := h.authService.Logout(c.UserContext(), sessionID); err != nil {
			return utils.InternalError(c, "Failed to logout")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
	})
	return utils.Success(c, fiber.Map{"message": "Successfully logged out"})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, sessionID string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionID,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		Path:     "/",
		SameSite: "Strict",
		MaxAge:   7 * 24 * 60 * 60,
	})
}
