package service

import (
	"context"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/internal/repository"
)

// PayoutService turns reconciled earnings into persisted payout records.
type PayoutService struct {
	earnings *EarningsService
	payouts  *repository.PayoutRepo
}

func NewPayoutService(earnings *EarningsService, payouts *repository.PayoutRepo) *PayoutService {
	return &PayoutService{earnings: earnings, payouts: payouts}
}

// Refresh recomputes a creator's cycle earnings and upserts the provisional
// payout record. Called by the payout worker after post changes.
func (s *PayoutService) Refresh(ctx context.Context, creatorID, cycleID string) (*model.PayoutRecord, error) {
	return s.write(ctx, creatorID, cycleID, false)
}

// Finalize recomputes and marks the payout record final. Finalized records
// are never overwritten by later refreshes.
func (s *PayoutService) Finalize(ctx context.Context, creatorID, cycleID string) (*model.PayoutRecord, error) {
	return s.write(ctx, creatorID, cycleID, true)
}

// Record returns the persisted payout record for one creator/cycle.
func (s *PayoutService) Record(ctx context.Context, creatorID, cycleID string) (*model.PayoutRecord, error) {
	return s.payouts.Find(ctx, creatorID, cycleID)
}

// ListByCycle returns every payout record for a cycle.
func (s *PayoutService) ListByCycle(ctx context.Context, cycleID string) ([]model.PayoutRecord, error) {
	return s.payouts.ListByCycle(ctx, cycleID)
}

func (s *PayoutService) write(ctx context.Context, creatorID, cycleID string, finalized bool) (*model.PayoutRecord, error) {
	// Always a fresh reconciliation pass — persisted money must never come
	// from a cached view.
	resp, err := s.earnings.Compute(ctx, creatorID, cycleID, ScopeCurrent)
	if err != nil {
		return nil, err
	}

	rec := model.PayoutRecord{
		CreatorID:    creatorID,
		CycleID:      cycleID,
		BasePayCents: resp.Earnings.BasePayCents,
		BonusCents:   resp.Earnings.BonusCents,
		TotalCents:   resp.Earnings.TotalCents,
		Finalized:    finalized,
	}
	if err := s.payouts.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
