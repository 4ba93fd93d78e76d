package usecase

import (
	"context"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of a
// CampaignRepository. It owns input validation; the repository is only
// handed entities that satisfy the domain invariants.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a use case backed by repo.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// ListCampaigns returns all campaigns.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// GetCampaign returns a campaign or domain.ErrCampaignNotFound.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// CreateCampaign checks that name, start_date, end_date and budget are
// present, parses the dates and persists the campaign with status Draft
// unless another status is given.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CampaignCreateReq) (*domain.Campaign, error) {
	switch {
	case !req.Name.Set:
		return nil, missingField("name")
	case !req.StartDate.Set:
		return nil, missingField("start_date")
	case !req.EndDate.Set:
		return nil, missingField("end_date")
	case !req.Budget.Set:
		return nil, missingField("budget")
	}

	start, errStart := domain.ParseTimestamp(req.StartDate.Value)
	end, errEnd := domain.ParseTimestamp(req.EndDate.Value)
	if errStart != nil || errEnd != nil {
		return nil, domain.NewValidationError("Invalid date format")
	}
	if req.Budget.Null {
		return nil, domain.NewValidationError("Invalid budget")
	}

	c := &domain.Campaign{
		Name:        req.Name.Value,
		Description: req.Description.Value,
		StartDate:   start,
		EndDate:     end,
		Budget:      float64(req.Budget.Value),
		Status:      domain.CampaignStatusDraft,
	}
	if req.Status.Set && !req.Status.Null {
		c.Status = domain.CampaignStatus(req.Status.Value)
	}
	if err := validateEntity(c); err != nil {
		return nil, err
	}

	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaign applies the present fields of req to the stored campaign.
// The date order is checked on the merged result, so a request may move
// just one end of the range.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, id int64, req port.CampaignUpdateReq) (*domain.Campaign, error) {
	c, err := u.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name.Set {
		c.Name = req.Name.Value
	}
	if req.Description.Set {
		c.Description = req.Description.Value
	}
	if req.StartDate.Set {
		start, err := domain.ParseTimestamp(req.StartDate.Value)
		if err != nil {
			return nil, domain.NewValidationError("Invalid start date format")
		}
		c.StartDate = start
	}
	if req.EndDate.Set {
		end, err := domain.ParseTimestamp(req.EndDate.Value)
		if err != nil {
			return nil, domain.NewValidationError("Invalid end date format")
		}
		c.EndDate = end
	}
	if req.Budget.Set {
		if req.Budget.Null {
			return nil, domain.NewValidationError("Invalid budget")
		}
		c.Budget = float64(req.Budget.Value)
	}
	if req.Status.Set {
		c.Status = domain.CampaignStatus(req.Status.Value)
	}
	if err = validateEntity(c); err != nil {
		return nil, err
	}

	found, err := u.repo.UpdateCampaign(ctx, c)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// DeleteCampaign removes a campaign and, through the foreign key, its
// advertisements.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id int64) error {
	found, err := u.repo.DeleteCampaign(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrCampaignNotFound
	}
	return nil
}
