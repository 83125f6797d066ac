package model

import "time"

// Cycle is a billing period over which a creator's posts are aggregated.
type Cycle struct {
	CycleID   string    `json:"cycleId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Frozen    bool      `json:"frozen"`
	ClosedOut bool      `json:"-"`
}

// Creator is a tracked creator account.
type Creator struct {
	CreatorID       string    `json:"creatorId"`
	Handle          string    `json:"handle,omitempty"`
	JoinedAt        time.Time `json:"joinedAt"`
	InstagramLinked bool      `json:"instagramLinked"`
	TikTokLinked    bool      `json:"tiktokLinked"`
}

// CreatorResponse is the API response for creator lookups.
type CreatorResponse struct {
	CreatorID       string `json:"creatorId"`
	Handle          string `json:"handle,omitempty"`
	AccountAgeDays  int    `json:"accountAgeDays"`
	InstagramLinked bool   `json:"instagramLinked"`
	TikTokLinked    bool   `json:"tiktokLinked"`
	TotalPosts      int    `json:"totalPosts"`
}

// PayoutRecord is the persisted amount owed to a creator for a cycle.
type PayoutRecord struct {
	CreatorID    string    `json:"creatorId"`
	CycleID      string    `json:"cycleId"`
	BasePayCents int64     `json:"basePayCents"`
	BonusCents   int64     `json:"bonusCents"`
	TotalCents   int64     `json:"totalCents"`
	Finalized    bool      `json:"finalized"`
	ComputedAt   time.Time `json:"computedAt"`
}

// StatsResponse is the API response for global platform statistics.
type StatsResponse struct {
	TotalCreators    int            `json:"totalCreators"`
	TotalPosts       int            `json:"totalPosts"`
	PostsByPlatform  map[string]int `json:"postsByPlatform"`
	TotalPayoutCents int64          `json:"totalPayoutCents"`
	OpenCycles       int            `json:"openCycles"`
}
