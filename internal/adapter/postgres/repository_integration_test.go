package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/db"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// newTestPool connects to TEST_DATABASE_URL, applies the migrations once
// per run and empties both tables. Tests are skipped without a database.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("TEST_DATABASE_URL")
	if addr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	migrateOnce.Do(func() { migrateErr = db.Migrate(addr) })
	require.NoError(t, migrateErr)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE campaigns, advertisements RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func newTestCampaign() *domain.Campaign {
	return &domain.Campaign{
		Name:        "Summer Sale",
		Description: "beach gear",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
		Budget:      5000,
		Status:      domain.CampaignStatusDraft,
	}
}

func TestCampaignRepository_CRUD(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool)
	ctx := context.Background()

	c := newTestCampaign()
	require.NoError(t, repo.CreateCampaign(ctx, c))
	assert.NotZero(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *c, *got)

	got.Status = domain.CampaignStatusActive
	found, err := repo.UpdateCampaign(ctx, got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, got.UpdatedAt.After(c.UpdatedAt))

	reloaded, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusActive, reloaded.Status)
	assert.Equal(t, c.CreatedAt, reloaded.CreatedAt)

	list, err := repo.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := repo.DeleteCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	missing, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err = repo.DeleteCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCampaignRepository_DateOrderConstraint(t *testing.T) {
	pool := newTestPool(t)
	repo := NewCampaignRepository(pool)

	c := newTestCampaign()
	c.StartDate, c.EndDate = c.EndDate, c.StartDate
	assert.Error(t, repo.CreateCampaign(context.Background(), c))
}

// TestDeleteCampaign_Cascades ensures a campaign's advertisements disappear
// with it.
func TestDeleteCampaign_Cascades(t *testing.T) {
	pool := newTestPool(t)
	campaigns := NewCampaignRepository(pool)
	ads := NewAdvertisementRepository(pool)
	ctx := context.Background()

	c := newTestCampaign()
	require.NoError(t, campaigns.CreateCampaign(ctx, c))

	var ids []int64
	for _, title := range []string{"a", "b"} {
		ad := &domain.Advertisement{CampaignID: c.ID, Title: title}
		require.NoError(t, ads.CreateAdvertisement(ctx, ad))
		ids = append(ids, ad.ID)
	}

	list, err := ads.ListAdvertisements(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = campaigns.DeleteCampaign(ctx, c.ID)
	require.NoError(t, err)

	for _, id := range ids {
		ad, err := ads.GetAdvertisement(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, ad)
	}
}

func TestAdvertisementRepository_UnknownCampaign(t *testing.T) {
	pool := newTestPool(t)
	ads := NewAdvertisementRepository(pool)

	err := ads.CreateAdvertisement(context.Background(), &domain.Advertisement{CampaignID: 12345, Title: "orphan"})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)

	var count int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT count(*) FROM advertisements`).Scan(&count))
	assert.Zero(t, count)
}

func TestAdvertisementRepository_Update(t *testing.T) {
	pool := newTestPool(t)
	campaigns := NewCampaignRepository(pool)
	ads := NewAdvertisementRepository(pool)
	ctx := context.Background()

	c := newTestCampaign()
	require.NoError(t, campaigns.CreateCampaign(ctx, c))
	ad := &domain.Advertisement{CampaignID: c.ID, Title: "old", Content: "copy"}
	require.NoError(t, ads.CreateAdvertisement(ctx, ad))

	ad.Title = "new"
	ad.TargetAudience = "students"
	found, err := ads.UpdateAdvertisement(ctx, ad)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := ads.GetAdvertisement(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "copy", got.Content)
	assert.Equal(t, "students", got.TargetAudience)
	assert.Equal(t, c.ID, got.CampaignID)

	found, err = ads.UpdateAdvertisement(ctx, &domain.Advertisement{ID: 999, Title: "x"})
	require.NoError(t, err)
	assert.False(t, found)
}
