// Package recon pairs a creator's Instagram and TikTok posts that carry the
// same clip and computes what the creator is owed for a billing cycle. It is
// the single implementation behind every earnings view and payout record;
// call sites must not re-derive pairing or totals themselves.
package recon

import (
	"time"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/pkg/phash"
)

const (
	// DefaultMatchWindow is how far apart two posts may be published and
	// still count as the same clip.
	DefaultMatchWindow = 24 * time.Hour

	// DefaultDurationTolerance is the maximum difference in video length,
	// in seconds, for a duration match.
	DefaultDurationTolerance = 1
)

// Options holds the engine tunables. Zero values fall back to defaults.
type Options struct {
	// SimilarityThreshold is the Hamming distance cutoff for thumbnail
	// matching, in bits.
	SimilarityThreshold int

	// MatchWindow is the maximum publish-time gap between paired posts.
	MatchWindow time.Duration

	// DurationTolerance is the maximum video-length difference, in
	// seconds, for a duration match.
	DurationTolerance int
}

// DefaultOptions returns the production tunables.
func DefaultOptions() Options {
	return Options{
		SimilarityThreshold: phash.DefaultThreshold,
		MatchWindow:         DefaultMatchWindow,
		DurationTolerance:   DefaultDurationTolerance,
	}
}

// Result is one reconciliation pass over a creator's posts: the paired rows
// for display and the payable totals for payout records.
type Result struct {
	Rows     []model.PairedRow
	Earnings model.EarningsBreakdown
}

// Engine runs the reconciliation computation. It is stateless and holds no
// cache; concurrent calls are safe because each operates only on its inputs.
type Engine struct {
	opts Options
}

// NewEngine creates an engine, filling unset options with defaults.
func NewEngine(opts Options) *Engine {
	if opts.SimilarityThreshold <= 0 {
		opts.SimilarityThreshold = phash.DefaultThreshold
	}
	if opts.MatchWindow <= 0 {
		opts.MatchWindow = DefaultMatchWindow
	}
	if opts.DurationTolerance <= 0 {
		opts.DurationTolerance = DefaultDurationTolerance
	}
	return &Engine{opts: opts}
}

// Reconcile pairs posts across platforms, resolves the bonus winner for each
// row, and reduces the rows into payable totals.
//
// Precondition: posts are sorted by PostedAt ascending. The greedy matcher is
// deterministic for a fixed input order only, so callers (repositories) are
// responsible for the ordering.
func (e *Engine) Reconcile(posts []model.Post) Result {
	rows := e.Pair(posts)
	e.ResolveWinners(rows)
	return Result{
		Rows:     rows,
		Earnings: e.Aggregate(rows),
	}
}

// MatchedRows counts rows where both platform sides are present.
func MatchedRows(rows []model.PairedRow) int {
	n := 0
	for _, row := range rows {
		if row.Instagram != nil && row.TikTok != nil {
			n++
		}
	}
	return n
}
