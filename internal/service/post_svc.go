package service

import (
	"context"
	"errors"
	"log"

	"github.com/AscendAI/creator-catalyst-sub001/internal/repository"
)

// ErrCycleFrozen is returned when a relevance toggle targets a frozen cycle.
var ErrCycleFrozen = errors.New("cycle is frozen")

// PostService handles operator actions on individual posts.
type PostService struct {
	posts  *repository.PostRepo
	cycles *repository.CycleRepo
	cache  *CacheService
}

func NewPostService(posts *repository.PostRepo, cycles *repository.CycleRepo, cache *CacheService) *PostService {
	return &PostService{posts: posts, cycles: cycles, cache: cache}
}

// SetIrrelevant toggles a post's payout exclusion flag. Frozen cycles take
// no further toggles. Earnings and payout totals are re-derived, not
// patched: the flag update notifies the payout worker via post_changes, and
// the cached earnings view is dropped so the next read recomputes.
func (s *PostService) SetIrrelevant(ctx context.Context, postID string, irrelevant bool) error {
	_, cycleID, err := s.posts.GetRef(ctx, postID)
	if err != nil {
		return err
	}

	cycle, err := s.cycles.FindByID(ctx, cycleID)
	if err != nil {
		return err
	}
	if cycle.Frozen {
		return ErrCycleFrozen
	}

	creatorID, cycleID, err := s.posts.SetIrrelevant(ctx, postID, irrelevant)
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateEarnings(ctx, creatorID, cycleID); err != nil {
			log.Printf("cache: invalidate earnings error: %v", err)
		}
	}

	return nil
}
