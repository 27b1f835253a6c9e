package handlers

import (
	"log"

	"hawamoni/internal/services/proxy"

	"github.com/gofiber/fiber/v2"
)

// ProxyHandler relays arbitrary API calls to the treasury backend,
// adding permissive CORS headers on the way back.
type ProxyHandler struct {
	client *proxy.Client
}

func NewProxyHandler(client *proxy.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

// Handle forwards GET/POST/PUT/DELETE under /proxy/* and answers
// OPTIONS preflight locally.
func (h *ProxyHandler) Handle(c *fiber.Ctx) error {
	setCORSHeaders(c)

	switch c.Method() {
	case fiber.MethodOptions:
		c.Set("Access-Control-Max-Age", "86400")
		return c.SendStatus(fiber.StatusOK)
	case fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete:
	default:
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "method not allowed",
		})
	}

	path := c.Params("*")
	rawQuery := string(c.Request().URI().QueryString())

	res, err := h.client.Forward(c.UserContext(), c.Method(), path, rawQuery, c.Body(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		log.Printf("proxy %s /%s failed: %v", c.Method(), path, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Proxy request failed",
			"message": err.Error(),
		})
	}

	if res.ContentType != "" {
		c.Set(fiber.HeaderContentType, res.ContentType)
	}
	return c.Status(res.Status).Send(res.Body)
}

func setCORSHeaders(c *fiber.Ctx) {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}
