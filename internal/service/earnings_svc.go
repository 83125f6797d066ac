package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/internal/recon"
	"github.com/AscendAI/creator-catalyst-sub001/internal/repository"
)

// Earnings query scopes. "current" reconciles one cycle's posts; "history"
// reconciles everything outside it.
const (
	ScopeCurrent = "current"
	ScopeHistory = "history"
)

// EarningsService answers creator/cycle earnings queries: load posts, run
// the reconciliation engine, cache the view. The engine itself is stateless;
// all staleness lives in this cache and is invalidated by the payout worker.
type EarningsService struct {
	posts  *repository.PostRepo
	cycles *repository.CycleRepo
	engine *recon.Engine
	cache  *CacheService
}

func NewEarningsService(posts *repository.PostRepo, cycles *repository.CycleRepo, engine *recon.Engine, cache *CacheService) *EarningsService {
	return &EarningsService{posts: posts, cycles: cycles, engine: engine, cache: cache}
}

// ForCycle reconciles a creator's posts for the given cycle and scope.
// Cache-aside: check Redis first, fall back to recomputing, then populate.
func (s *EarningsService) ForCycle(ctx context.Context, creatorID, cycleID, scope string) (*model.EarningsResponse, error) {
	if scope != ScopeCurrent && scope != ScopeHistory {
		return nil, fmt.Errorf("invalid scope: %s", scope)
	}

	if s.cache != nil {
		cached, err := s.cache.GetEarnings(ctx, creatorID, cycleID, scope)
		if err != nil {
			log.Printf("cache: earnings get error: %v", err)
		} else if cached != nil {
			var resp model.EarningsResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	resp, err := s.Compute(ctx, creatorID, cycleID, scope)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetEarnings(ctx, creatorID, cycleID, scope, resp); err != nil {
			log.Printf("cache: earnings set error: %v", err)
		}
	}

	return resp, nil
}

// Compute runs a fresh reconciliation pass, bypassing the cache. The payout
// worker uses this directly so persisted totals never come from stale data.
func (s *EarningsService) Compute(ctx context.Context, creatorID, cycleID, scope string) (*model.EarningsResponse, error) {
	var (
		posts []model.Post
		err   error
	)
	if scope == ScopeHistory {
		posts, err = s.posts.ListOutsideCycle(ctx, creatorID, cycleID)
	} else {
		posts, err = s.posts.ListForCycle(ctx, creatorID, cycleID)
	}
	if err != nil {
		return nil, err
	}

	res := s.engine.Reconcile(posts)
	if res.Rows == nil {
		res.Rows = []model.PairedRow{}
	}

	return &model.EarningsResponse{
		CreatorID:   creatorID,
		CycleID:     cycleID,
		Scope:       scope,
		Rows:        res.Rows,
		Earnings:    res.Earnings,
		ComputedAt:  time.Now().UTC().Format(time.RFC3339),
		TotalPosts:  len(posts),
		MatchedRows: recon.MatchedRows(res.Rows),
	}, nil
}
