package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
)

const postColumns = `
	post_id, creator_id, cycle_id, platform, posted_at, caption,
	duration_seconds, thumbnail_hash, views, likes, comments,
	base_pay_cents, bonus_cents, is_irrelevant, is_eligible`

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

// ListForCycle returns a creator's posts attributed to one cycle, ordered by
// posted_at ascending. The reconciliation engine requires this ordering.
func (r *PostRepo) ListForCycle(ctx context.Context, creatorID, cycleID string) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE creator_id = $1 AND cycle_id = $2
		ORDER BY posted_at ASC, post_id ASC`

	rows, err := r.pool.Query(ctx, query, creatorID, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListOutsideCycle returns a creator's posts from every cycle except the
// given one, ordered by posted_at ascending.
func (r *PostRepo) ListOutsideCycle(ctx context.Context, creatorID, cycleID string) ([]model.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE creator_id = $1 AND cycle_id <> $2
		ORDER BY posted_at ASC, post_id ASC`

	rows, err := r.pool.Query(ctx, query, creatorID, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// GetRef returns the creator and cycle a post belongs to.
func (r *PostRepo) GetRef(ctx context.Context, postID string) (creatorID, cycleID string, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT creator_id, cycle_id FROM posts WHERE post_id = $1`, postID).
		Scan(&creatorID, &cycleID)
	return creatorID, cycleID, err
}

// SetIrrelevant flips a post's payout exclusion flag and returns the
// creator/cycle it belongs to, so callers can invalidate derived state.
// A pg_notify on post_changes wakes the payout worker.
func (r *PostRepo) SetIrrelevant(ctx context.Context, postID string, irrelevant bool) (creatorID, cycleID string, err error) {
	err = r.pool.QueryRow(ctx, `
		UPDATE posts
		SET is_irrelevant = $1
		WHERE post_id = $2
		RETURNING creator_id, cycle_id`,
		irrelevant, postID).Scan(&creatorID, &cycleID)
	if err != nil {
		return "", "", err
	}

	_, err = r.pool.Exec(ctx, `SELECT pg_notify('post_changes', $1 || ':' || $2)`, creatorID, cycleID)
	return creatorID, cycleID, err
}

// UpsertBatch writes a batch of ingested posts. Stats and pay amounts are
// overwritten on conflict; is_irrelevant is an operator flag and is never
// touched by ingestion. Returns the number of rows written.
func (r *PostRepo) UpsertBatch(ctx context.Context, posts []model.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	upserted := 0
	touched := make(map[string]struct{})
	for _, p := range posts {
		_, err := tx.Exec(ctx, `
			INSERT INTO posts (`+postColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, false, $14)
			ON CONFLICT (post_id) DO UPDATE SET
				posted_at        = EXCLUDED.posted_at,
				caption          = EXCLUDED.caption,
				duration_seconds = EXCLUDED.duration_seconds,
				thumbnail_hash   = EXCLUDED.thumbnail_hash,
				views            = EXCLUDED.views,
				likes            = EXCLUDED.likes,
				comments         = EXCLUDED.comments,
				base_pay_cents   = EXCLUDED.base_pay_cents,
				bonus_cents      = EXCLUDED.bonus_cents`,
			p.ID, p.CreatorID, p.CycleID, p.Platform, p.PostedAt, p.Caption,
			p.DurationSeconds, p.ThumbnailHash, p.Views, p.Likes, p.Comments,
			p.BasePayCents, p.BonusCents, p.IsEligible)
		if err != nil {
			return 0, err
		}
		upserted++
		touched[p.CreatorID+":"+p.CycleID] = struct{}{}
	}

	for key := range touched {
		if _, err := tx.Exec(ctx, `SELECT pg_notify('post_changes', $1)`, key); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return upserted, nil
}

// CountByCreator returns the creator's total tracked posts.
func (r *PostRepo) CountByCreator(ctx context.Context, creatorID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts WHERE creator_id = $1`, creatorID).Scan(&n)
	return n, err
}

func scanPosts(rows pgx.Rows) ([]model.Post, error) {
	var posts []model.Post
	for rows.Next() {
		var p model.Post
		err := rows.Scan(
			&p.ID, &p.CreatorID, &p.CycleID, &p.Platform, &p.PostedAt, &p.Caption,
			&p.DurationSeconds, &p.ThumbnailHash, &p.Views, &p.Likes, &p.Comments,
			&p.BasePayCents, &p.BonusCents, &p.IsIrrelevant, &p.IsEligible,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
