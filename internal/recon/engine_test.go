package recon

import (
	"reflect"
	"testing"
	"time"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
)

func TestReconcile_DurationMatchTikTokWins(t *testing.T) {
	a := igPost("ig1", t0)
	a.DurationSeconds = pint(30)
	a.Views = 1000
	a.BasePayCents = 500
	a.BonusCents = 200

	b := ttPost("tt1", t0.Add(3*time.Hour))
	b.DurationSeconds = pint(30)
	b.Views = 1500
	b.BasePayCents = 400
	b.BonusCents = 300

	e := NewEngine(DefaultOptions())
	res := e.Reconcile([]model.Post{a, b})

	if len(res.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(res.Rows))
	}
	row := res.Rows[0]
	if row.MatchType != model.MatchDuration {
		t.Errorf("matchType = %q, want duration", row.MatchType)
	}
	if row.WinnerPlatform != model.PlatformTikTok {
		t.Errorf("winner = %q, want tiktok", row.WinnerPlatform)
	}
	want := model.EarningsBreakdown{BasePayCents: 900, BonusCents: 300, TotalCents: 1200}
	if res.Earnings != want {
		t.Errorf("earnings = %+v, want %+v", res.Earnings, want)
	}
}

func TestReconcile_ThumbnailFallback(t *testing.T) {
	// Instagram post has no duration; TikTok side does. Pairing falls back
	// to thumbnail similarity (8 differing bits, threshold 12).
	a := igPost("ig1", t0)
	a.ThumbnailHash = pstr("0000000000000000")

	b := ttPost("tt1", t0.Add(time.Hour))
	b.DurationSeconds = pint(45)
	b.ThumbnailHash = pstr("00000000000000ff")

	e := NewEngine(DefaultOptions())
	res := e.Reconcile([]model.Post{a, b})

	if len(res.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(res.Rows))
	}
	if res.Rows[0].MatchType != model.MatchThumbnail {
		t.Errorf("matchType = %q, want thumbnail", res.Rows[0].MatchType)
	}
}

func TestReconcile_ViewTieGoesToInstagram(t *testing.T) {
	a := igPost("ig1", t0)
	a.DurationSeconds = pint(20)
	a.Views = 500
	a.BonusCents = 200

	b := ttPost("tt1", t0.Add(time.Hour))
	b.DurationSeconds = pint(20)
	b.Views = 500
	b.BonusCents = 300

	e := NewEngine(DefaultOptions())
	res := e.Reconcile([]model.Post{a, b})

	if res.Rows[0].WinnerPlatform != model.PlatformInstagram {
		t.Errorf("winner = %q, want instagram on exact view tie", res.Rows[0].WinnerPlatform)
	}
	if res.Earnings.BonusCents != 200 {
		t.Errorf("bonus = %d, want 200 (instagram's)", res.Earnings.BonusCents)
	}
}

func TestReconcile_EmptyInput(t *testing.T) {
	e := NewEngine(DefaultOptions())
	res := e.Reconcile(nil)

	if len(res.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(res.Rows))
	}
	if res.Earnings != (model.EarningsBreakdown{}) {
		t.Errorf("earnings = %+v, want zero", res.Earnings)
	}
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	a := igPost("ig1", t0)
	a.DurationSeconds = pint(30)
	a.Views = 100
	b := ttPost("tt1", t0.Add(time.Hour))
	b.DurationSeconds = pint(30)
	b.Views = 200

	posts := []model.Post{a, b}
	before := make([]model.Post, len(posts))
	copy(before, posts)

	e := NewEngine(DefaultOptions())
	e.Reconcile(posts)

	if !reflect.DeepEqual(posts, before) {
		t.Errorf("input posts were mutated")
	}
}

func TestReconcile_DeterministicForFixedOrder(t *testing.T) {
	posts := []model.Post{}
	for i, gap := range []time.Duration{0, time.Hour, 2 * time.Hour} {
		a := igPost("ig"+string(rune('1'+i)), t0.Add(gap))
		a.DurationSeconds = pint(30 + i)
		a.Views = 100 * (i + 1)
		a.BasePayCents = 500
		a.BonusCents = 200
		posts = append(posts, a)

		b := ttPost("tt"+string(rune('1'+i)), t0.Add(gap+30*time.Minute))
		b.DurationSeconds = pint(30 + i)
		b.Views = 120 * (i + 1)
		b.BasePayCents = 400
		b.BonusCents = 250
		posts = append(posts, b)
	}

	e := NewEngine(DefaultOptions())
	first := e.Reconcile(posts)
	second := e.Reconcile(posts)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("reconciliation is not deterministic for a fixed input order")
	}
}

func TestMatchedRows(t *testing.T) {
	rows := []model.PairedRow{
		pairRow(1, 2, false, false),
		{Instagram: &model.Post{ID: "ig9"}},
		{TikTok: &model.Post{ID: "tt9"}},
	}
	if got := MatchedRows(rows); got != 1 {
		t.Errorf("MatchedRows = %d, want 1", got)
	}
}

func TestNewEngine_ZeroOptionsFallBackToDefaults(t *testing.T) {
	e := NewEngine(Options{})
	if e.opts.SimilarityThreshold != 12 {
		t.Errorf("threshold = %d, want 12", e.opts.SimilarityThreshold)
	}
	if e.opts.MatchWindow != 24*time.Hour {
		t.Errorf("window = %s, want 24h", e.opts.MatchWindow)
	}
	if e.opts.DurationTolerance != 1 {
		t.Errorf("tolerance = %d, want 1", e.opts.DurationTolerance)
	}
}
