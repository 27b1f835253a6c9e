package handlers

import (
	"hawamoni/internal/services/dashboard"
	"hawamoni/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetGroups(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{"groups": h.dashboardService.Groups()})
}

func (h *DashboardHandler) GetGroup(c *fiber.Ctx) error {
	group, err := h.dashboardService.Group(c.Params("id"))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"group": group})
}

func (h *DashboardHandler) GetRequests(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"requests": h.dashboardService.Requests(c.Query("group_id")),
	})
}

func (h *DashboardHandler) GetActivity(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"activity": h.dashboardService.Activity(c.Query("group_id")),
	})
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{"stats": h.dashboardService.Stats()})
}
