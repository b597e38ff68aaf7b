package handler

import (
	"go-stock-ledger/internal/middleware"
	"go-stock-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.ReportService
}

func NewDashboardHandler(s service.ReportService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.Summary(c.UserContext(), middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(stats)
}
