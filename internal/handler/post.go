package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/AscendAI/creator-catalyst-sub001/internal/middleware"
	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/internal/service"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// SetRelevance handles PATCH /api/posts/:postId/relevance
func (h *PostHandler) SetRelevance(c fiber.Ctx) error {
	postID, errMsg := middleware.ValidatePostID(c.Params("postId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.RelevanceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	err := h.svc.SetIrrelevant(c.Context(), postID, req.Irrelevant)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Post not found")
		}
		if errors.Is(err, service.ErrCycleFrozen) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "CYCLE_FROZEN",
				"Cycle is frozen; relevance can no longer be changed")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to update post relevance")
	}

	return c.JSON(fiber.Map{"success": true, "postId": postID, "irrelevant": req.Irrelevant})
}
