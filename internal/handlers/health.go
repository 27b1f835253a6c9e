package handlers

import (
	"net/http"
	"time"

	"hawamoni/internal/services/proxy"
	"hawamoni/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// CheckResult is the fixed shape of a dependency check.
type CheckResult struct {
	OK         bool   `json:"ok"`
	HTTPStatus int    `json:"http_status,omitempty"`
	Error      string `json:"error,omitempty"`
}

type HealthHandler struct {
	backend *proxy.Client
}

func NewHealthHandler(backend *proxy.Client) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// Status is the liveness probe.
func (h *HealthHandler) Status(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Backend reports whether the treasury backend is reachable.
func (h *HealthHandler) Backend(c *fiber.Ctx) error {
	res, err := h.backend.Forward(c.UserContext(), http.MethodGet, "", "", nil, "")
	if err != nil {
		return utils.Success(c, CheckResult{OK: false, Error: err.Error()})
	}
	return utils.Success(c, CheckResult{OK: res.OK(), HTTPStatus: res.Status})
}
