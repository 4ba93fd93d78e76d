package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "Draft"
	CampaignStatusActive    CampaignStatus = "Active"
	CampaignStatusPaused    CampaignStatus = "Paused"
	CampaignStatusCompleted CampaignStatus = "Completed"
)

// Campaign represents an advertising campaign. It owns its advertisements:
// deleting a campaign removes them as well.
type Campaign struct {
	ID          int64
	Name        string `validate:"required,max=100"`
	Description string
	StartDate   time.Time      `validate:"required"`
	EndDate     time.Time      `validate:"required,gtefield=StartDate"`
	Budget      float64        `validate:"gte=0"`
	Status      CampaignStatus `validate:"oneof=Draft Active Paused Completed"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
