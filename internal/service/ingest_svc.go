package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/internal/repository"
)

// IngestService accepts post batches from the platform-sync pipeline and
// upserts them. Pay amounts arrive pre-computed by the bonus-tier calculator
// upstream; this service only normalizes and stores.
type IngestService struct {
	posts *repository.PostRepo
	cache *CacheService
}

func NewIngestService(posts *repository.PostRepo, cache *CacheService) *IngestService {
	return &IngestService{posts: posts, cache: cache}
}

// UpsertBatch validates, normalizes, and writes a batch. Invalid records are
// skipped and reported rather than failing the whole batch; negative counters
// are clamped to zero so the reconciliation engine never sees them.
func (s *IngestService) UpsertBatch(ctx context.Context, req model.IngestRequest) (*model.IngestResponse, error) {
	resp := &model.IngestResponse{Received: len(req.Posts)}

	valid := make([]model.Post, 0, len(req.Posts))
	touched := make(map[[2]string]struct{})
	for i, in := range req.Posts {
		p, err := normalizeIngestPost(in)
		if err != nil {
			resp.Rejected++
			resp.Errors = append(resp.Errors, fmt.Sprintf("posts[%d]: %v", i, err))
			continue
		}
		valid = append(valid, p)
		touched[[2]string{p.CreatorID, p.CycleID}] = struct{}{}
	}

	upserted, err := s.posts.UpsertBatch(ctx, valid)
	if err != nil {
		return nil, err
	}
	resp.Upserted = upserted

	// New stats change pairing and winners; drop affected cached views.
	if s.cache != nil {
		for key := range touched {
			if err := s.cache.InvalidateEarnings(ctx, key[0], key[1]); err != nil {
				log.Printf("cache: invalidate earnings error: %v", err)
			}
		}
	}

	return resp, nil
}

func normalizeIngestPost(in model.IngestPost) (model.Post, error) {
	if in.ID == "" || in.CreatorID == "" || in.CycleID == "" {
		return model.Post{}, fmt.Errorf("id, creatorId, and cycleId are required")
	}

	platform := model.Platform(in.Platform)
	if platform != model.PlatformInstagram && platform != model.PlatformTikTok {
		return model.Post{}, fmt.Errorf("unknown platform %q", in.Platform)
	}

	postedAt, err := time.Parse(time.RFC3339, in.PostedAt)
	if err != nil {
		return model.Post{}, fmt.Errorf("postedAt must be RFC3339: %v", err)
	}

	if in.BasePayCents < 0 || in.BonusCents < 0 {
		return model.Post{}, fmt.Errorf("pay amounts must be non-negative")
	}

	return model.Post{
		ID:              in.ID,
		CreatorID:       in.CreatorID,
		CycleID:         in.CycleID,
		Platform:        platform,
		PostedAt:        postedAt.UTC(),
		Caption:         in.Caption,
		DurationSeconds: in.DurationSeconds,
		ThumbnailHash:   in.ThumbnailHash,
		Views:           clampNonNegative(in.Views),
		Likes:           clampNonNegative(in.Likes),
		Comments:        clampNonNegative(in.Comments),
		BasePayCents:    in.BasePayCents,
		BonusCents:      in.BonusCents,
	}, nil
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
