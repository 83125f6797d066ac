package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/AscendAI/creator-catalyst-sub001/internal/middleware"
	"github.com/AscendAI/creator-catalyst-sub001/internal/service"
)

type StatsHandler struct {
	svc *service.CreatorService
}

func NewStatsHandler(svc *service.CreatorService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.svc.GetStats(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to fetch stats")
	}

	return c.JSON(stats)
}
