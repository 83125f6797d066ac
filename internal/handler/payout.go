package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/AscendAI/creator-catalyst-sub001/internal/middleware"
	"github.com/AscendAI/creator-catalyst-sub001/internal/service"
)

type PayoutHandler struct {
	svc *service.PayoutService
}

func NewPayoutHandler(svc *service.PayoutService) *PayoutHandler {
	return &PayoutHandler{svc: svc}
}

// Finalize handles POST /api/creators/:creatorId/cycles/:cycleId/payout/finalize
func (h *PayoutHandler) Finalize(c fiber.Ctx) error {
	creatorID, errMsg := middleware.ValidateCreatorID(c.Params("creatorId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	cycleID, errMsg := middleware.ValidateCycleID(c.Params("cycleId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	rec, err := h.svc.Finalize(c.Context(), creatorID, cycleID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to finalize payout")
	}

	if Metrics.PayoutsFinalized != nil {
		Metrics.PayoutsFinalized.Inc()
	}

	return c.JSON(rec)
}

// GetRecord handles GET /api/creators/:creatorId/cycles/:cycleId/payout
func (h *PayoutHandler) GetRecord(c fiber.Ctx) error {
	creatorID, errMsg := middleware.ValidateCreatorID(c.Params("creatorId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	cycleID, errMsg := middleware.ValidateCycleID(c.Params("cycleId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	rec, err := h.svc.Record(c.Context(), creatorID, cycleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Payout record not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to fetch payout record")
	}

	return c.JSON(rec)
}

// ExportCycle handles GET /api/cycles/:cycleId/payouts/export
// Streams the cycle's payout ledger as CSV for the finance team.
func (h *PayoutHandler) ExportCycle(c fiber.Ctx) error {
	cycleID, errMsg := middleware.ValidateCycleID(c.Params("cycleId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	records, err := h.svc.ListByCycle(c.Context(), cycleID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to export payouts")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"creator_id", "cycle_id", "base_pay_cents", "bonus_cents", "total_cents", "finalized", "computed_at"})
	for _, rec := range records {
		_ = w.Write([]string{
			rec.CreatorID,
			rec.CycleID,
			strconv.FormatInt(rec.BasePayCents, 10),
			strconv.FormatInt(rec.BonusCents, 10),
			strconv.FormatInt(rec.TotalCents, 10),
			strconv.FormatBool(rec.Finalized),
			rec.ComputedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to export payouts")
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=payouts-%s.csv", cycleID))
	return c.Send(buf.Bytes())
}
