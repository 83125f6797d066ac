package service

import (
	"context"
	"math"
	"time"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/internal/repository"
)

type CreatorService struct {
	creators *repository.CreatorRepo
	posts    *repository.PostRepo
}

func NewCreatorService(creators *repository.CreatorRepo, posts *repository.PostRepo) *CreatorService {
	return &CreatorService{creators: creators, posts: posts}
}

// Lookup returns the creator response for a given creator ID.
func (s *CreatorService) Lookup(ctx context.Context, creatorID string) (*model.CreatorResponse, error) {
	c, err := s.creators.FindByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	totalPosts, err := s.posts.CountByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	return &model.CreatorResponse{
		CreatorID:       c.CreatorID,
		Handle:          c.Handle,
		AccountAgeDays:  int(math.Floor(time.Since(c.JoinedAt).Hours() / 24)),
		InstagramLinked: c.InstagramLinked,
		TikTokLinked:    c.TikTokLinked,
		TotalPosts:      totalPosts,
	}, nil
}

// GetStats returns aggregate platform statistics.
func (s *CreatorService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	return s.creators.GetStats(ctx)
}
