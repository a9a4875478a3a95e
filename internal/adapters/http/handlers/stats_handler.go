package handlers

import (
	"shop-orders/internal/core/services"
	"shop-orders/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles admin reporting endpoints. The route chain runs
// AuthMiddleware and AdminOnly before any handler here executes.
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// SalesStats handles GET /api/stats/sales
func (h *StatsHandler) SalesStats(c *fiber.Ctx) error {
	stats, err := h.statsService.SalesStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return c.JSON(stats)
}
