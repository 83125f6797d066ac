package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
)

type PayoutRepo struct {
	pool *pgxpool.Pool
}

func NewPayoutRepo(pool *pgxpool.Pool) *PayoutRepo {
	return &PayoutRepo{pool: pool}
}

// Upsert writes the amount owed to a creator for a cycle. Reconciliation is
// recomputed from posts on every pass, so the record is always overwritten —
// except that a finalized record is never reopened by a non-final write.
func (r *PayoutRepo) Upsert(ctx context.Context, rec model.PayoutRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payouts (creator_id, cycle_id, base_pay_cents, bonus_cents, total_cents, finalized, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (creator_id, cycle_id) DO UPDATE SET
			base_pay_cents = EXCLUDED.base_pay_cents,
			bonus_cents    = EXCLUDED.bonus_cents,
			total_cents    = EXCLUDED.total_cents,
			finalized      = payouts.finalized OR EXCLUDED.finalized,
			computed_at    = NOW()
		WHERE payouts.finalized = false`,
		rec.CreatorID, rec.CycleID, rec.BasePayCents, rec.BonusCents, rec.TotalCents, rec.Finalized)
	return err
}

// Find returns the payout record for one creator/cycle.
func (r *PayoutRepo) Find(ctx context.Context, creatorID, cycleID string) (*model.PayoutRecord, error) {
	var rec model.PayoutRecord
	err := r.pool.QueryRow(ctx, `
		SELECT creator_id, cycle_id, base_pay_cents, bonus_cents, total_cents, finalized, computed_at
		FROM payouts
		WHERE creator_id = $1 AND cycle_id = $2`, creatorID, cycleID).
		Scan(&rec.CreatorID, &rec.CycleID, &rec.BasePayCents, &rec.BonusCents,
			&rec.TotalCents, &rec.Finalized, &rec.ComputedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByCycle returns every payout record for a cycle, largest first.
func (r *PayoutRepo) ListByCycle(ctx context.Context, cycleID string) ([]model.PayoutRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT creator_id, cycle_id, base_pay_cents, bonus_cents, total_cents, finalized, computed_at
		FROM payouts
		WHERE cycle_id = $1
		ORDER BY total_cents DESC, creator_id ASC`, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.PayoutRecord
	for rows.Next() {
		var rec model.PayoutRecord
		err := rows.Scan(&rec.CreatorID, &rec.CycleID, &rec.BasePayCents, &rec.BonusCents,
			&rec.TotalCents, &rec.Finalized, &rec.ComputedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
