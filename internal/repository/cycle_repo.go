package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
)

type CycleRepo struct {
	pool *pgxpool.Pool
}

func NewCycleRepo(pool *pgxpool.Pool) *CycleRepo {
	return &CycleRepo{pool: pool}
}

// FindByID returns a single billing cycle.
func (r *CycleRepo) FindByID(ctx context.Context, cycleID string) (*model.Cycle, error) {
	var c model.Cycle
	err := r.pool.QueryRow(ctx, `
		SELECT cycle_id, starts_at, ends_at, frozen, closed_out
		FROM cycles
		WHERE cycle_id = $1`, cycleID).
		Scan(&c.CycleID, &c.StartsAt, &c.EndsAt, &c.Frozen, &c.ClosedOut)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCurrent returns the cycle covering the present moment.
func (r *CycleRepo) FindCurrent(ctx context.Context) (*model.Cycle, error) {
	var c model.Cycle
	err := r.pool.QueryRow(ctx, `
		SELECT cycle_id, starts_at, ends_at, frozen, closed_out
		FROM cycles
		WHERE NOW() >= starts_at AND NOW() < ends_at
		ORDER BY starts_at DESC
		LIMIT 1`).
		Scan(&c.CycleID, &c.StartsAt, &c.EndsAt, &c.Frozen, &c.ClosedOut)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListEndedUnclosed returns cycles whose billing period has ended but whose
// payout records have not been finalized yet.
func (r *CycleRepo) ListEndedUnclosed(ctx context.Context) ([]model.Cycle, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cycle_id, starts_at, ends_at, frozen, closed_out
		FROM cycles
		WHERE ends_at <= NOW() AND closed_out = false
		ORDER BY ends_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cycles []model.Cycle
	for rows.Next() {
		var c model.Cycle
		if err := rows.Scan(&c.CycleID, &c.StartsAt, &c.EndsAt, &c.Frozen, &c.ClosedOut); err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// MarkClosedOut records that every payout for the cycle has been finalized.
func (r *CycleRepo) MarkClosedOut(ctx context.Context, cycleID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE cycles SET closed_out = true, frozen = true WHERE cycle_id = $1`, cycleID)
	return err
}

// ListCreatorIDs returns every creator with at least one post in the cycle.
func (r *CycleRepo) ListCreatorIDs(ctx context.Context, cycleID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT creator_id
		FROM posts
		WHERE cycle_id = $1
		ORDER BY creator_id`, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
