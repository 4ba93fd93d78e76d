package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
	"campaign-manager/internal/core/port/mocks"
)

func newCampaign() *domain.Campaign {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	return &domain.Campaign{
		ID:          7,
		Name:        "Summer Sale",
		Description: "beach gear",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
		Budget:      5000,
		Status:      domain.CampaignStatusDraft,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	assert.Equal(t, msg, verr.Message)
}

// TestCreateCampaign_Defaults checks that omitted optional fields fall back
// to their defaults and that the repository fills in the identity.
func TestCreateCampaign_Defaults(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) {
			c.ID = 1
			c.CreatedAt = now
			c.UpdatedAt = now
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo)
	got, err := svc.CreateCampaign(context.Background(), port.CampaignCreateReq{
		Name:      port.Some("Summer Sale"),
		StartDate: port.Some("2024-06-01T00:00:00Z"),
		EndDate:   port.Some("2024-08-31T00:00:00Z"),
		Budget:    port.Some(port.Amount(5000)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Summer Sale", got.Name)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, domain.CampaignStatusDraft, got.Status)
	assert.Equal(t, 5000.0, got.Budget)
	assert.Equal(t, "2024-06-01T00:00:00+00:00", domain.FormatTimestamp(got.StartDate))
	assert.Equal(t, now, got.CreatedAt)
}

func TestCreateCampaign_MissingFields(t *testing.T) {
	full := port.CampaignCreateReq{
		Name:      port.Some("n"),
		StartDate: port.Some("2024-06-01"),
		EndDate:   port.Some("2024-06-02"),
		Budget:    port.Some(port.Amount(1)),
	}
	tests := []struct {
		field string
		drop  func(r *port.CampaignCreateReq)
	}{
		{"name", func(r *port.CampaignCreateReq) { r.Name = port.Optional[string]{} }},
		{"start_date", func(r *port.CampaignCreateReq) { r.StartDate = port.Optional[string]{} }},
		{"end_date", func(r *port.CampaignCreateReq) { r.EndDate = port.Optional[string]{} }},
		{"budget", func(r *port.CampaignCreateReq) { r.Budget = port.Optional[port.Amount]{} }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			req := full
			tt.drop(&req)

			_, err := NewCampaignUseCase(repo).CreateCampaign(context.Background(), req)
			requireValidation(t, err, "Missing required field: "+tt.field)
		})
	}
}

func TestCreateCampaign_Rejected(t *testing.T) {
	tests := []struct {
		name string
		req  port.CampaignCreateReq
		msg  string
	}{
		{
			name: "reversed dates",
			req: port.CampaignCreateReq{
				Name:      port.Some("n"),
				StartDate: port.Some("2024-08-31T00:00:00Z"),
				EndDate:   port.Some("2024-06-01T00:00:00Z"),
				Budget:    port.Some(port.Amount(10)),
			},
			msg: "Start date must be before end date",
		},
		{
			name: "bad date",
			req: port.CampaignCreateReq{
				Name:      port.Some("n"),
				StartDate: port.Some("yesterday"),
				EndDate:   port.Some("2024-06-01T00:00:00Z"),
				Budget:    port.Some(port.Amount(10)),
			},
			msg: "Invalid date format",
		},
		{
			name: "negative budget",
			req: port.CampaignCreateReq{
				Name:      port.Some("n"),
				StartDate: port.Some("2024-06-01"),
				EndDate:   port.Some("2024-06-01"),
				Budget:    port.Some(port.Amount(-1)),
			},
			msg: "Budget must be non-negative",
		},
		{
			name: "unknown status",
			req: port.CampaignCreateReq{
				Name:      port.Some("n"),
				StartDate: port.Some("2024-06-01"),
				EndDate:   port.Some("2024-06-02"),
				Budget:    port.Some(port.Amount(1)),
				Status:    port.Some("Archived"),
			},
			msg: "Invalid status: must be one of Draft, Active, Paused, Completed",
		},
		{
			name: "empty name",
			req: port.CampaignCreateReq{
				Name:      port.Some(""),
				StartDate: port.Some("2024-06-01"),
				EndDate:   port.Some("2024-06-02"),
				Budget:    port.Some(port.Amount(1)),
			},
			msg: "Field name must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository calls are expected: nothing may be written
			repo := mocks.NewMockCampaignRepository(t)

			_, err := NewCampaignUseCase(repo).CreateCampaign(context.Background(), tt.req)
			requireValidation(t, err, tt.msg)
		})
	}
}

func TestGetCampaign_NotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(999999)).Return(nil, nil)

	_, err := NewCampaignUseCase(repo).GetCampaign(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

// TestUpdateCampaign_StatusOnly ensures a partial update leaves the fields
// that were not supplied untouched.
func TestUpdateCampaign_StatusOnly(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	stored := newCampaign()
	before := *stored

	repo.EXPECT().GetCampaign(mock.Anything, stored.ID).Return(stored, nil)
	repo.EXPECT().
		UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) {
			c.UpdatedAt = c.UpdatedAt.Add(time.Minute)
		}).
		Return(true, nil)

	got, err := NewCampaignUseCase(repo).UpdateCampaign(context.Background(), stored.ID, port.CampaignUpdateReq{
		Status: port.Some("Active"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.CampaignStatusActive, got.Status)
	assert.Equal(t, before.Name, got.Name)
	assert.Equal(t, before.Description, got.Description)
	assert.Equal(t, before.StartDate, got.StartDate)
	assert.Equal(t, before.EndDate, got.EndDate)
	assert.Equal(t, before.Budget, got.Budget)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(before.UpdatedAt))
}

// TestUpdateCampaign_MixedDates checks the order invariant against the
// stored end date when only the start date is sent.
func TestUpdateCampaign_MixedDates(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	stored := newCampaign()
	repo.EXPECT().GetCampaign(mock.Anything, stored.ID).Return(stored, nil)

	_, err := NewCampaignUseCase(repo).UpdateCampaign(context.Background(), stored.ID, port.CampaignUpdateReq{
		StartDate: port.Some("2024-09-01T00:00:00Z"),
	})
	requireValidation(t, err, "Start date must be before end date")
}

func TestUpdateCampaign_InvalidDates(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(7)).RunAndReturn(
		func(context.Context, int64) (*domain.Campaign, error) { return newCampaign(), nil })

	svc := NewCampaignUseCase(repo)

	_, err := svc.UpdateCampaign(context.Background(), 7, port.CampaignUpdateReq{StartDate: port.Some("06/01/2024")})
	requireValidation(t, err, "Invalid start date format")

	_, err = svc.UpdateCampaign(context.Background(), 7, port.CampaignUpdateReq{EndDate: port.Some("soon")})
	requireValidation(t, err, "Invalid end date format")
}

func TestUpdateCampaign_NotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(nil, nil)

	_, err := NewCampaignUseCase(repo).UpdateCampaign(context.Background(), 3, port.CampaignUpdateReq{Name: port.Some("x")})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestDeleteCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().DeleteCampaign(mock.Anything, int64(7)).Return(true, nil)
	repo.EXPECT().DeleteCampaign(mock.Anything, int64(8)).Return(false, nil)

	svc := NewCampaignUseCase(repo)
	assert.NoError(t, svc.DeleteCampaign(context.Background(), 7))
	assert.ErrorIs(t, svc.DeleteCampaign(context.Background(), 8), domain.ErrCampaignNotFound)
}

func TestDeleteCampaign_StoreError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	boom := errors.New("connection reset")
	repo.EXPECT().DeleteCampaign(mock.Anything, int64(7)).Return(false, boom)

	err := NewCampaignUseCase(repo).DeleteCampaign(context.Background(), 7)
	assert.ErrorIs(t, err, boom)
}
