package httpadapter

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/core/domain"
)

func storedAdvertisement() *domain.Advertisement {
	ts := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	return &domain.Advertisement{
		ID:             11,
		CampaignID:     7,
		Title:          "Beach banner",
		Content:        "50% off",
		ImageURL:       "https://cdn.example.com/beach.png",
		TargetAudience: "surfers",
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
}

func TestCreateAdvertisement(t *testing.T) {
	f := newAPIFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(storedCampaign(), nil)
	f.ads.EXPECT().
		CreateAdvertisement(mock.Anything, mock.AnythingOfType("*domain.Advertisement")).
		Run(func(ctx context.Context, ad *domain.Advertisement) {
			ad.ID = 11
			ad.CreatedAt = time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
			ad.UpdatedAt = ad.CreatedAt
		}).
		Return(nil)

	rec := f.do(http.MethodPost, "/api/campaigns/7/advertisements", `{"title":"Beach banner"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"id": 11,
		"campaign_id": 7,
		"title": "Beach banner",
		"content": "",
		"image_url": "",
		"target_audience": "",
		"created_at": "2024-05-03T12:00:00+00:00",
		"updated_at": "2024-05-03T12:00:00+00:00"
	}`, rec.Body.String())
}

func TestCreateAdvertisement_UnknownCampaign(t *testing.T) {
	f := newAPIFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(404)).Return(nil, nil)

	rec := f.do(http.MethodPost, "/api/campaigns/404/advertisements", `{"title":"x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Campaign not found"}`, rec.Body.String())
}

func TestCreateAdvertisement_MissingTitle(t *testing.T) {
	f := newAPIFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(storedCampaign(), nil)

	rec := f.do(http.MethodPost, "/api/campaigns/7/advertisements", `{"content":"copy"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required field: title"}`, rec.Body.String())
}

func TestListAdvertisements(t *testing.T) {
	f := newAPIFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(storedCampaign(), nil)
	f.ads.EXPECT().ListAdvertisements(mock.Anything, int64(7)).Return([]domain.Advertisement{*storedAdvertisement()}, nil)

	rec := f.do(http.MethodGet, "/api/campaigns/7/advertisements", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Beach banner"`)
	assert.Equal(t, byte('['), rec.Body.Bytes()[0])
}

func TestListAdvertisements_UnknownCampaign(t *testing.T) {
	f := newAPIFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/campaigns/3/advertisements", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAdvertisement(t *testing.T) {
	f := newAPIFixture(t)
	f.ads.EXPECT().GetAdvertisement(mock.Anything, int64(11)).Return(storedAdvertisement(), nil)
	f.ads.EXPECT().GetAdvertisement(mock.Anything, int64(12)).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/advertisements/11", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "surfers", decodeObject(t, rec)["target_audience"])

	rec = f.do(http.MethodGet, "/api/advertisements/12", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Advertisement not found"}`, rec.Body.String())
}

// TestUpdateAdvertisement_IgnoresCampaignID ensures the owning campaign
// cannot be changed through the update endpoint.
func TestUpdateAdvertisement_IgnoresCampaignID(t *testing.T) {
	f := newAPIFixture(t)
	f.ads.EXPECT().GetAdvertisement(mock.Anything, int64(11)).Return(storedAdvertisement(), nil)
	f.ads.EXPECT().
		UpdateAdvertisement(mock.Anything, mock.MatchedBy(func(ad *domain.Advertisement) bool {
			return ad.CampaignID == 7 && ad.Title == "Sunset banner"
		})).
		Return(true, nil)

	rec := f.do(http.MethodPut, "/api/advertisements/11", `{"title":"Sunset banner","campaign_id":99}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeObject(t, rec)
	assert.Equal(t, "Sunset banner", body["title"])
	assert.Equal(t, float64(7), body["campaign_id"])
	assert.Equal(t, "50% off", body["content"])
}

func TestDeleteAdvertisement(t *testing.T) {
	f := newAPIFixture(t)
	f.ads.EXPECT().DeleteAdvertisement(mock.Anything, int64(11)).Return(true, nil)

	rec := f.do(http.MethodDelete, "/api/advertisements/11", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Advertisement deleted successfully"}`, rec.Body.String())
}
