package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/AscendAI/creator-catalyst-sub001/internal/middleware"
	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/internal/service"
)

// MaxIngestBatch caps one sync-pipeline batch.
const MaxIngestBatch = 500

type IngestHandler struct {
	svc *service.IngestService
}

func NewIngestHandler(svc *service.IngestService) *IngestHandler {
	return &IngestHandler{svc: svc}
}

// UpsertPosts handles POST /api/ingest/posts
func (h *IngestHandler) UpsertPosts(c fiber.Ctx) error {
	var req model.IngestRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if len(req.Posts) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "EMPTY_BATCH", "posts must not be empty")
	}
	if len(req.Posts) > MaxIngestBatch {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "BATCH_TOO_LARGE",
			"posts must contain at most 500 records")
	}

	resp, err := h.svc.UpsertBatch(c.Context(), req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to ingest posts")
	}

	if Metrics.PostsIngested != nil {
		for _, p := range req.Posts {
			Metrics.PostsIngested.WithLabelValues(p.Platform).Inc()
		}
	}

	return c.JSON(resp)
}
