package handlers

import (
	"log/slog"
	"net/http"

	"claims-service/internal/services"
	"claims-service/internal/utils"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	DashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		DashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Register(app *fiber.App) {
	claimGr := app.Group("claims/api/v1")

	claimGr.Get("/dashboard/stats", h.GetDashboardStats)
}

func (h *DashboardHandler) GetDashboardStats(c fiber.Ctx) error {
	stats, err := h.DashboardService.GetDashboardStats(c.Context())
	if err != nil {
		slog.Error("failed to get dashboard stats", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(
			utils.CreateErrorResponse("INTERNAL_SERVER_ERROR", "Failed to get dashboard stats"))
	}
	return c.Status(http.StatusOK).JSON(utils.CreateSuccessResponse(stats))
}
