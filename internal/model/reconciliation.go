package model

import "time"

// MatchType records how the two sides of a paired row were linked.
type MatchType string

const (
	MatchDuration  MatchType = "duration"
	MatchThumbnail MatchType = "thumbnail"
	MatchNone      MatchType = "none"
)

// PairedRow is one reconciled content item: an Instagram post, a TikTok post,
// or both when the engine decided they are the same clip. Rows are recomputed
// on every query and never persisted.
type PairedRow struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Caption        *string   `json:"caption,omitempty"`
	Instagram      *Post     `json:"instagram,omitempty"`
	TikTok         *Post     `json:"tiktok,omitempty"`
	MatchType      MatchType `json:"matchType"`
	WinnerPlatform Platform  `json:"winnerPlatform,omitempty"`
}

// EarningsBreakdown is the reduction of a row list into payable totals,
// in integer cents.
type EarningsBreakdown struct {
	BasePayCents int64 `json:"basePayCents"`
	BonusCents   int64 `json:"bonusCents"`
	TotalCents   int64 `json:"totalCents"`
}

// EarningsResponse is the API response for a creator/cycle earnings query:
// the row list for display plus the totals for payout records.
type EarningsResponse struct {
	CreatorID   string            `json:"creatorId"`
	CycleID     string            `json:"cycleId"`
	Scope       string            `json:"scope"`
	Rows        []PairedRow       `json:"rows"`
	Earnings    EarningsBreakdown `json:"earnings"`
	ComputedAt  string            `json:"computedAt"`
	TotalPosts  int               `json:"totalPosts"`
	MatchedRows int               `json:"matchedRows"`
}
