package httpadapter

import (
	"time"

	"campaign-manager/internal/core/domain"
)

// campaignResponse is the canonical wire form of a campaign. Every field is
// always present; timestamps are null only when unset.
type campaignResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

type advertisementResponse struct {
	ID             int64   `json:"id"`
	CampaignID     int64   `json:"campaign_id"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	ImageURL       string  `json:"image_url"`
	TargetAudience string  `json:"target_audience"`
	CreatedAt      *string `json:"created_at"`
	UpdatedAt      *string `json:"updated_at"`
}

func timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := domain.FormatTimestamp(t)
	return &s
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   timestamp(c.StartDate),
		EndDate:     timestamp(c.EndDate),
		Budget:      c.Budget,
		Status:      string(c.Status),
		CreatedAt:   timestamp(c.CreatedAt),
		UpdatedAt:   timestamp(c.UpdatedAt),
	}
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignResponse(c))
	}
	return out
}

func toAdvertisementResponse(ad domain.Advertisement) advertisementResponse {
	return advertisementResponse{
		ID:             ad.ID,
		CampaignID:     ad.CampaignID,
		Title:          ad.Title,
		Content:        ad.Content,
		ImageURL:       ad.ImageURL,
		TargetAudience: ad.TargetAudience,
		CreatedAt:      timestamp(ad.CreatedAt),
		UpdatedAt:      timestamp(ad.UpdatedAt),
	}
}

func toAdvertisementResponses(ads []domain.Advertisement) []advertisementResponse {
	out := make([]advertisementResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, toAdvertisementResponse(ad))
	}
	return out
}
