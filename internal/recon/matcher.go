package recon

import (
	"time"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
	"github.com/AscendAI/creator-catalyst-sub001/pkg/phash"
)

// Pair partitions posts by platform and greedily links Instagram posts to
// TikTok posts that carry the same clip. For each Instagram post, a duration
// match (closest length within tolerance, ties broken by smallest publish-time
// gap) is tried first; only when none exists does it fall back to the first
// TikTok post in input order with a similar thumbnail hash. A TikTok post is
// consumed by at most one row; leftovers become solo rows, so every input
// post appears in exactly one output row.
func (e *Engine) Pair(posts []model.Post) []model.PairedRow {
	var instagram, tiktok []*model.Post
	for i := range posts {
		p := posts[i]
		switch p.Platform {
		case model.PlatformInstagram:
			instagram = append(instagram, &p)
		case model.PlatformTikTok:
			tiktok = append(tiktok, &p)
		}
	}

	used := make([]bool, len(tiktok))
	rows := make([]model.PairedRow, 0, len(posts))

	for _, a := range instagram {
		idx, matchType := e.findMatch(a, tiktok, used)

		var match *model.Post
		if idx >= 0 {
			match = tiktok[idx]
			used[idx] = true
		}

		rows = append(rows, newRow(a, match, matchType))
	}

	// Unconsumed TikTok posts stand alone.
	for j, b := range tiktok {
		if !used[j] {
			rows = append(rows, newRow(nil, b, model.MatchNone))
		}
	}

	return rows
}

// findMatch returns the index of the TikTok post pairing with a, or -1.
func (e *Engine) findMatch(a *model.Post, tiktok []*model.Post, used []bool) (int, model.MatchType) {
	if a.DurationSeconds != nil {
		if idx := e.bestDurationMatch(a, tiktok, used); idx >= 0 {
			return idx, model.MatchDuration
		}
	}
	if idx := e.firstThumbnailMatch(a, tiktok, used); idx >= 0 {
		return idx, model.MatchThumbnail
	}
	return -1, model.MatchNone
}

// bestDurationMatch scans unused TikTok posts inside the match window whose
// length is within tolerance of a's, and picks the closest length. Ties go to
// the candidate published nearest in time.
func (e *Engine) bestDurationMatch(a *model.Post, tiktok []*model.Post, used []bool) int {
	best := -1
	var bestDurDiff int
	var bestTimeDiff time.Duration

	for j, b := range tiktok {
		if used[j] || b.DurationSeconds == nil {
			continue
		}
		timeDiff := absDuration(a.PostedAt.Sub(b.PostedAt))
		if timeDiff > e.opts.MatchWindow {
			continue
		}
		durDiff := absInt(*a.DurationSeconds - *b.DurationSeconds)
		if durDiff > e.opts.DurationTolerance {
			continue
		}
		if best == -1 || durDiff < bestDurDiff || (durDiff == bestDurDiff && timeDiff < bestTimeDiff) {
			best = j
			bestDurDiff = durDiff
			bestTimeDiff = timeDiff
		}
	}
	return best
}

// firstThumbnailMatch returns the first unused TikTok post in input order
// inside the match window whose thumbnail hash is similar to a's. Absent or
// malformed hashes never match.
func (e *Engine) firstThumbnailMatch(a *model.Post, tiktok []*model.Post, used []bool) int {
	for j, b := range tiktok {
		if used[j] {
			continue
		}
		if absDuration(a.PostedAt.Sub(b.PostedAt)) > e.opts.MatchWindow {
			continue
		}
		if phash.AreSimilar(a.Hash(), b.Hash(), e.opts.SimilarityThreshold) {
			return j
		}
	}
	return -1
}

// newRow builds a row from an Instagram post, a TikTok post, or both.
// The row carries the earliest publish date and the Instagram caption when
// that side is present.
func newRow(a, b *model.Post, matchType model.MatchType) model.PairedRow {
	row := model.PairedRow{
		Instagram: a,
		TikTok:    b,
		MatchType: matchType,
	}

	switch {
	case a != nil && b != nil:
		row.ID = a.ID
		row.Date = a.PostedAt
		if b.PostedAt.Before(a.PostedAt) {
			row.Date = b.PostedAt
		}
		row.Caption = a.Caption
	case a != nil:
		row.ID = a.ID
		row.Date = a.PostedAt
		row.Caption = a.Caption
	default:
		row.ID = b.ID
		row.Date = b.PostedAt
		row.Caption = b.Caption
	}

	return row
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
