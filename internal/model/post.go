package model

import "time"

// Platform identifies which social platform a post was published to.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"

	// PlatformNone marks a paired row with no bonus-eligible side.
	PlatformNone Platform = ""
)

// Post is one platform submission for a creator within a billing cycle.
// Pay amounts arrive pre-computed from the bonus-tier calculator and are
// carried in integer cents; the reconciliation engine never mutates a Post.
type Post struct {
	ID              string    `json:"id"`
	CreatorID       string    `json:"creatorId"`
	CycleID         string    `json:"cycleId"`
	Platform        Platform  `json:"platform"`
	PostedAt        time.Time `json:"postedAt"`
	Caption         *string   `json:"caption,omitempty"`
	DurationSeconds *int      `json:"durationSeconds,omitempty"`
	ThumbnailHash   *string   `json:"thumbnailHash,omitempty"`
	Views           int       `json:"views"`
	Likes           int       `json:"likes"`
	Comments        int       `json:"comments"`
	BasePayCents    int64     `json:"basePayCents"`
	BonusCents      int64     `json:"bonusCents"`
	IsIrrelevant    bool      `json:"isIrrelevant"`
	IsEligible      *bool     `json:"isEligible,omitempty"`
}

// Hash returns the thumbnail hash or "" when absent.
func (p *Post) Hash() string {
	if p.ThumbnailHash == nil {
		return ""
	}
	return *p.ThumbnailHash
}
