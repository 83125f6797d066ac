package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
)

type CreatorRepo struct {
	pool *pgxpool.Pool
}

func NewCreatorRepo(pool *pgxpool.Pool) *CreatorRepo {
	return &CreatorRepo{pool: pool}
}

// FindByCreatorID returns a single creator account.
func (r *CreatorRepo) FindByCreatorID(ctx context.Context, creatorID string) (*model.Creator, error) {
	var c model.Creator
	err := r.pool.QueryRow(ctx, `
		SELECT creator_id, handle, joined_at, instagram_linked, tiktok_linked
		FROM creators
		WHERE creator_id = $1`, creatorID).
		Scan(&c.CreatorID, &c.Handle, &c.JoinedAt, &c.InstagramLinked, &c.TikTokLinked)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetStats returns aggregate platform statistics.
func (r *CreatorRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	stats := &model.StatsResponse{
		PostsByPlatform: make(map[string]int),
	}

	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM creators`).Scan(&stats.TotalCreators)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT platform, COUNT(*)
		FROM posts
		GROUP BY platform`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var platform string
		var n int
		if err := rows.Scan(&platform, &n); err != nil {
			return nil, err
		}
		stats.PostsByPlatform[platform] = n
		stats.TotalPosts += n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_cents), 0) FROM payouts WHERE finalized = true`).
		Scan(&stats.TotalPayoutCents)
	if err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cycles WHERE closed_out = false`).Scan(&stats.OpenCycles)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
