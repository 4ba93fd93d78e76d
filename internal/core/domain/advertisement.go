package domain

import "time"

// Advertisement is a creative unit belonging to exactly one campaign.
// CampaignID is fixed at creation.
type Advertisement struct {
	ID             int64
	CampaignID     int64
	Title          string `validate:"required,max=100"`
	Content        string
	ImageURL       string `validate:"max=255"`
	TargetAudience string `validate:"max=100"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
