package recon

import (
	"testing"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
)

func pairRow(igViews, ttViews int, igIrrelevant, ttIrrelevant bool) model.PairedRow {
	return model.PairedRow{
		Instagram: &model.Post{ID: "ig1", Platform: model.PlatformInstagram, Views: igViews, IsIrrelevant: igIrrelevant},
		TikTok:    &model.Post{ID: "tt1", Platform: model.PlatformTikTok, Views: ttViews, IsIrrelevant: ttIrrelevant},
		MatchType: model.MatchDuration,
	}
}

func TestResolveWinners_Pairs(t *testing.T) {
	tests := []struct {
		name string
		row  model.PairedRow
		want model.Platform
	}{
		{"instagram has more views", pairRow(1500, 1000, false, false), model.PlatformInstagram},
		{"tiktok has more views", pairRow(1000, 1500, false, false), model.PlatformTikTok},
		{"exact view tie goes to instagram", pairRow(500, 500, false, false), model.PlatformInstagram},
		{"zero views both sides", pairRow(0, 0, false, false), model.PlatformInstagram},
		{"instagram irrelevant, tiktok wins despite fewer views", pairRow(9000, 10, true, false), model.PlatformTikTok},
		{"tiktok irrelevant, instagram wins despite fewer views", pairRow(10, 9000, false, true), model.PlatformInstagram},
		{"both irrelevant", pairRow(1000, 1000, true, true), model.PlatformNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultOptions())
			rows := []model.PairedRow{tt.row}
			e.ResolveWinners(rows)
			if rows[0].WinnerPlatform != tt.want {
				t.Errorf("winner = %q, want %q", rows[0].WinnerPlatform, tt.want)
			}
		})
	}
}

func TestResolveWinners_SoloRows(t *testing.T) {
	tests := []struct {
		name string
		row  model.PairedRow
		want model.Platform
	}{
		{
			"solo instagram eligible",
			model.PairedRow{Instagram: &model.Post{ID: "ig1", Platform: model.PlatformInstagram}},
			model.PlatformInstagram,
		},
		{
			"solo instagram irrelevant",
			model.PairedRow{Instagram: &model.Post{ID: "ig1", Platform: model.PlatformInstagram, IsIrrelevant: true}},
			model.PlatformNone,
		},
		{
			"solo tiktok eligible",
			model.PairedRow{TikTok: &model.Post{ID: "tt1", Platform: model.PlatformTikTok}},
			model.PlatformTikTok,
		},
		{
			"solo tiktok irrelevant",
			model.PairedRow{TikTok: &model.Post{ID: "tt1", Platform: model.PlatformTikTok, IsIrrelevant: true}},
			model.PlatformNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(DefaultOptions())
			rows := []model.PairedRow{tt.row}
			e.ResolveWinners(rows)
			if rows[0].WinnerPlatform != tt.want {
				t.Errorf("winner = %q, want %q", rows[0].WinnerPlatform, tt.want)
			}
		})
	}
}

func TestResolveWinners_IgnoresEligibleFlag(t *testing.T) {
	// IsEligible is carried for upstream compatibility but must not gate
	// winner selection; only IsIrrelevant does.
	notEligible := false
	row := pairRow(1000, 500, false, false)
	row.Instagram.IsEligible = &notEligible

	e := NewEngine(DefaultOptions())
	rows := []model.PairedRow{row}
	e.ResolveWinners(rows)

	if rows[0].WinnerPlatform != model.PlatformInstagram {
		t.Errorf("winner = %q, want instagram (isEligible must not affect the result)", rows[0].WinnerPlatform)
	}
}
