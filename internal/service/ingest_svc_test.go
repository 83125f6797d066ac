package service

import (
	"testing"
	"time"

	"github.com/AscendAI/creator-catalyst-sub001/internal/model"
)

func validIngestPost() model.IngestPost {
	return model.IngestPost{
		ID:           "post-1",
		CreatorID:    "creator-1",
		CycleID:      "cycle-2026-03",
		Platform:     "instagram",
		PostedAt:     "2026-03-01T12:00:00Z",
		Views:        100,
		Likes:        10,
		Comments:     2,
		BasePayCents: 500,
		BonusCents:   200,
	}
}

func TestNormalizeIngestPost_Valid(t *testing.T) {
	p, err := normalizeIngestPost(validIngestPost())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Platform != model.PlatformInstagram {
		t.Errorf("platform = %q, want instagram", p.Platform)
	}
	want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !p.PostedAt.Equal(want) {
		t.Errorf("postedAt = %v, want %v", p.PostedAt, want)
	}
	if p.PostedAt.Location() != time.UTC {
		t.Error("postedAt should be normalized to UTC")
	}
	if p.IsIrrelevant {
		t.Error("new posts must not arrive flagged irrelevant")
	}
}

func TestNormalizeIngestPost_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.IngestPost)
	}{
		{"missing id", func(p *model.IngestPost) { p.ID = "" }},
		{"missing creatorId", func(p *model.IngestPost) { p.CreatorID = "" }},
		{"missing cycleId", func(p *model.IngestPost) { p.CycleID = "" }},
		{"unknown platform", func(p *model.IngestPost) { p.Platform = "youtube" }},
		{"empty platform", func(p *model.IngestPost) { p.Platform = "" }},
		{"bad timestamp", func(p *model.IngestPost) { p.PostedAt = "03/01/2026" }},
		{"negative base pay", func(p *model.IngestPost) { p.BasePayCents = -1 }},
		{"negative bonus", func(p *model.IngestPost) { p.BonusCents = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validIngestPost()
			tt.mutate(&in)
			if _, err := normalizeIngestPost(in); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestNormalizeIngestPost_ClampsNegativeCounters(t *testing.T) {
	in := validIngestPost()
	in.Views = -5
	in.Likes = -1
	in.Comments = -100

	p, err := normalizeIngestPost(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Views != 0 || p.Likes != 0 || p.Comments != 0 {
		t.Errorf("counters should clamp to zero, got views=%d likes=%d comments=%d",
			p.Views, p.Likes, p.Comments)
	}
}

func TestClampNonNegative(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 0},
		{0, 0},
		{42, 42},
	}
	for _, tt := range tests {
		if got := clampNonNegative(tt.in); got != tt.want {
			t.Errorf("clampNonNegative(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
