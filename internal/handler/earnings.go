package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/AscendAI/creator-catalyst-sub001/internal/middleware"
	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/internal/service"
)

type EarningsHandler struct {
	svc *service.EarningsService
}

func NewEarningsHandler(svc *service.EarningsService) *EarningsHandler {
	return &EarningsHandler{svc: svc}
}

// GetForCycle handles GET /api/creators/:creatorId/cycles/:cycleId/earnings?scope=current|history
func (h *EarningsHandler) GetForCycle(c fiber.Ctx) error {
	creatorID, errMsg := middleware.ValidateCreatorID(c.Params("creatorId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	cycleID, errMsg := middleware.ValidateCycleID(c.Params("cycleId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	scope := fiber.Query[string](c, "scope")
	if scope == "" {
		scope = service.ScopeCurrent
	}
	if scope != service.ScopeCurrent && scope != service.ScopeHistory {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM",
			"scope must be 'current' or 'history'")
	}

	start := time.Now()
	resp, err := h.svc.ForCycle(c.Context(), creatorID, cycleID, scope)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to reconcile earnings")
	}

	if Metrics.ReconcileRuns != nil {
		Metrics.ReconcileRuns.Inc()
		Metrics.ReconcileDuration.Observe(time.Since(start).Seconds())
		for _, row := range resp.Rows {
			if row.MatchType != model.MatchNone {
				Metrics.MatchedRows.WithLabelValues(string(row.MatchType)).Inc()
			}
		}
	}

	return c.JSON(resp)
}
