package usecase

import (
	"context"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// AdvertisementUseCase implements port.AdvertisementUseCase. It needs the
// campaign repository to check the parent of list and create calls.
type AdvertisementUseCase struct {
	campaigns port.CampaignRepository
	ads       port.AdvertisementRepository
}

func NewAdvertisementUseCase(campaigns port.CampaignRepository, ads port.AdvertisementRepository) *AdvertisementUseCase {
	return &AdvertisementUseCase{campaigns: campaigns, ads: ads}
}

// ListAdvertisements returns the advertisements of an existing campaign.
func (u *AdvertisementUseCase) ListAdvertisements(ctx context.Context, campaignID int64) ([]domain.Advertisement, error) {
	if err := u.requireCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.ads.ListAdvertisements(ctx, campaignID)
}

// GetAdvertisement returns an advertisement or domain.ErrAdvertisementNotFound.
func (u *AdvertisementUseCase) GetAdvertisement(ctx context.Context, id int64) (*domain.Advertisement, error) {
	ad, err := u.ads.GetAdvertisement(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, domain.ErrAdvertisementNotFound
	}
	return ad, nil
}

// CreateAdvertisement persists a new advertisement under campaignID. Only
// title is required; the other text fields default to "".
func (u *AdvertisementUseCase) CreateAdvertisement(ctx context.Context, campaignID int64, req port.AdvertisementCreateReq) (*domain.Advertisement, error) {
	if err := u.requireCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	if !req.Title.Set {
		return nil, missingField("title")
	}

	ad := &domain.Advertisement{
		CampaignID:     campaignID,
		Title:          req.Title.Value,
		Content:        req.Content.Value,
		ImageURL:       req.ImageURL.Value,
		TargetAudience: req.TargetAudience.Value,
	}
	if err := validateEntity(ad); err != nil {
		return nil, err
	}

	if err := u.ads.CreateAdvertisement(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// UpdateAdvertisement applies the present fields of req. The owning
// campaign never changes.
func (u *AdvertisementUseCase) UpdateAdvertisement(ctx context.Context, id int64, req port.AdvertisementUpdateReq) (*domain.Advertisement, error) {
	ad, err := u.GetAdvertisement(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title.Set {
		ad.Title = req.Title.Value
	}
	if req.Content.Set {
		ad.Content = req.Content.Value
	}
	if req.ImageURL.Set {
		ad.ImageURL = req.ImageURL.Value
	}
	if req.TargetAudience.Set {
		ad.TargetAudience = req.TargetAudience.Value
	}
	if err = validateEntity(ad); err != nil {
		return nil, err
	}

	found, err := u.ads.UpdateAdvertisement(ctx, ad)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrAdvertisementNotFound
	}
	return ad, nil
}

func (u *AdvertisementUseCase) DeleteAdvertisement(ctx context.Context, id int64) error {
	found, err := u.ads.DeleteAdvertisement(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrAdvertisementNotFound
	}
	return nil
}

func (u *AdvertisementUseCase) requireCampaign(ctx context.Context, id int64) error {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrCampaignNotFound
	}
	return nil
}
