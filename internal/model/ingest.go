package model

// IngestPost is one post record pushed by the platform-sync pipeline.
// Stats and pay amounts are already resolved upstream; negative counters
// are clamped to zero before the engine ever sees them.
type IngestPost struct {
	ID              string  `json:"id"`
	CreatorID       string  `json:"creatorId"`
	CycleID         string  `json:"cycleId"`
	Platform        string  `json:"platform"`
	PostedAt        string  `json:"postedAt"` // RFC3339
	Caption         *string `json:"caption,omitempty"`
	DurationSeconds *int    `json:"durationSeconds,omitempty"`
	ThumbnailHash   *string `json:"thumbnailHash,omitempty"`
	Views           int     `json:"views"`
	Likes           int     `json:"likes"`
	Comments        int     `json:"comments"`
	BasePayCents    int64   `json:"basePayCents"`
	BonusCents      int64   `json:"bonusCents"`
}

// IngestRequest is the API request body for a batch post upsert.
type IngestRequest struct {
	Posts []IngestPost `json:"posts"`
}

// IngestResponse reports how a batch upsert went.
type IngestResponse struct {
	Received int      `json:"received"`
	Upserted int      `json:"upserted"`
	Rejected int      `json:"rejected"`
	Errors   []string `json:"errors,omitempty"`
}

// RelevanceRequest is the API request body for toggling a post's
// payout exclusion flag.
type RelevanceRequest struct {
	Irrelevant bool `json:"irrelevant"`
}
