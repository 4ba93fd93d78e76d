package port

import (
	"context"

	"campaign-manager/internal/core/domain"
)

// CampaignUseCase defines the campaign operations exposed to the HTTP
// layer. Validation failures are returned as *domain.ValidationError and
// unknown ids as domain.ErrCampaignNotFound.
type CampaignUseCase interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCampaign validates req, applies defaults and persists the
	// campaign.
	CreateCampaign(ctx context.Context, req CampaignCreateReq) (*domain.Campaign, error)
	// UpdateCampaign applies the fields present in req and re-validates the
	// merged campaign before persisting it.
	UpdateCampaign(ctx context.Context, id int64, req CampaignUpdateReq) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) error
}

// AdvertisementUseCase defines the advertisement operations. Advertisements
// are always created under an existing campaign.
type AdvertisementUseCase interface {
	ListAdvertisements(ctx context.Context, campaignID int64) ([]domain.Advertisement, error)
	GetAdvertisement(ctx context.Context, id int64) (*domain.Advertisement, error)
	CreateAdvertisement(ctx context.Context, campaignID int64, req AdvertisementCreateReq) (*domain.Advertisement, error)
	UpdateAdvertisement(ctx context.Context, id int64, req AdvertisementUpdateReq) (*domain.Advertisement, error)
	DeleteAdvertisement(ctx context.Context, id int64) error
}

// CampaignCreateReq is the body of a campaign create request. Dates are
// kept as strings so that the use case can report parse failures.
type CampaignCreateReq struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
	StartDate   Optional[string] `json:"start_date"`
	EndDate     Optional[string] `json:"end_date"`
	Budget      Optional[Amount] `json:"budget"`
	Status      Optional[string] `json:"status"`
}

// CampaignUpdateReq carries a partial campaign update. Only fields with
// Set are applied.
type CampaignUpdateReq struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
	StartDate   Optional[string] `json:"start_date"`
	EndDate     Optional[string] `json:"end_date"`
	Budget      Optional[Amount] `json:"budget"`
	Status      Optional[string] `json:"status"`
}

type AdvertisementCreateReq struct {
	Title          Optional[string] `json:"title"`
	Content        Optional[string] `json:"content"`
	ImageURL       Optional[string] `json:"image_url"`
	TargetAudience Optional[string] `json:"target_audience"`
}

// AdvertisementUpdateReq carries a partial advertisement update. A
// campaign_id key in the body is ignored.
type AdvertisementUpdateReq struct {
	Title          Optional[string] `json:"title"`
	Content        Optional[string] `json:"content"`
	ImageURL       Optional[string] `json:"image_url"`
	TargetAudience Optional[string] `json:"target_audience"`
}
