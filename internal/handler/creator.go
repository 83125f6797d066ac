package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/AscendAI/creator-catalyst-sub001/internal/middleware"
	"github.com/AscendAI/creator-catalyst-sub001/internal/service"
)

type CreatorHandler struct {
	svc *service.CreatorService
}

func NewCreatorHandler(svc *service.CreatorService) *CreatorHandler {
	return &CreatorHandler{svc: svc}
}

// GetByCreatorID handles GET /api/creators/:creatorId
func (h *CreatorHandler) GetByCreatorID(c fiber.Ctx) error {
	creatorID, errMsg := middleware.ValidateCreatorID(c.Params("creatorId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	creator, err := h.svc.Lookup(c.Context(), creatorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Creator not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to lookup creator")
	}

	return c.JSON(creator)
}
