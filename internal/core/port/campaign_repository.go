package port

import (
	"context"

	"campaign-manager/internal/core/domain"
)

// CampaignRepository is the outbound port persisting campaigns. Lookups of
// unknown ids return a nil campaign and a nil error.
type CampaignRepository interface {
	// ListCampaigns returns every campaign in insertion order.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCampaign inserts c and fills in its ID, CreatedAt and UpdatedAt.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign overwrites the mutable columns of c and refreshes
	// UpdatedAt. It reports false when the row no longer exists.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) (bool, error)
	// DeleteCampaign removes a campaign together with its advertisements.
	// It reports false when the row did not exist.
	DeleteCampaign(ctx context.Context, id int64) (bool, error)
}

// AdvertisementRepository is the outbound port persisting advertisements.
type AdvertisementRepository interface {
	// ListAdvertisements returns the advertisements of one campaign.
	ListAdvertisements(ctx context.Context, campaignID int64) ([]domain.Advertisement, error)
	// GetAdvertisement returns an advertisement by id, or nil when absent.
	GetAdvertisement(ctx context.Context, id int64) (*domain.Advertisement, error)
	// CreateAdvertisement inserts ad and fills in its ID and timestamps.
	// It returns domain.ErrCampaignNotFound when the parent is missing.
	CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error
	// UpdateAdvertisement overwrites title, content, image URL and target
	// audience. CampaignID is never written.
	UpdateAdvertisement(ctx context.Context, ad *domain.Advertisement) (bool, error)
	// DeleteAdvertisement removes an advertisement.
	DeleteAdvertisement(ctx context.Context, id int64) (bool, error)
}
