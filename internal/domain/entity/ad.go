package entity

import "time"

// Ad is a top-level banner placement referencing a brand and one of its
// deals by id. The deal must live inside the referenced brand; resolution is
// done at read time via nested lookup, never enforced centrally.
type Ad struct {
	ID        string    `json:"id"`
	Banner    string    `json:"banner"`
	BrandID   string    `json:"brand_id"`
	DealID    string    `json:"deal_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedBy string    `json:"created_by"`
}

// ResolvedAd is an ad with its referenced brand and deal attached for the
// detail view. Brand/Deal stay nil when the reference dangles. DaysLeft may
// be zero or negative for an expired placement; the view renders that state.
type ResolvedAd struct {
	Ad       Ad     `json:"ad"`
	Brand    *Brand `json:"brand,omitempty"`
	Deal     *Deal  `json:"deal,omitempty"`
	DaysLeft int    `json:"days_left"`
}
