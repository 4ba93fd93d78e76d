package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-manager/internal/core/domain"
)

const advertisementColumns = `id, campaign_id, title, content, image_url, target_audience, created_at, updated_at`

// foreignKeyViolation is the SQLSTATE for foreign_key_violation.
const foreignKeyViolation = "23503"

// AdvertisementRepository implements port.AdvertisementRepository using
// pgxpool for PostgreSQL.
type AdvertisementRepository struct {
	pool *pgxpool.Pool
}

func NewAdvertisementRepository(pool *pgxpool.Pool) *AdvertisementRepository {
	return &AdvertisementRepository{pool: pool}
}

func scanAdvertisement(row pgx.Row) (domain.Advertisement, error) {
	var ad domain.Advertisement
	err := row.Scan(
		&ad.ID,
		&ad.CampaignID,
		&ad.Title,
		&ad.Content,
		&ad.ImageURL,
		&ad.TargetAudience,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	ad.CreatedAt = ad.CreatedAt.UTC()
	ad.UpdatedAt = ad.UpdatedAt.UTC()
	return ad, err
}

// ListAdvertisements returns the advertisements of a campaign ordered by id.
func (r *AdvertisementRepository) ListAdvertisements(ctx context.Context, campaignID int64) ([]domain.Advertisement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+advertisementColumns+` FROM advertisements WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list advertisements of campaign %d: %w", campaignID, err)
	}
	ads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Advertisement, error) {
		return scanAdvertisement(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list advertisements of campaign %d: %w", campaignID, err)
	}
	return ads, nil
}

// GetAdvertisement returns an advertisement by id, or nil when absent.
func (r *AdvertisementRepository) GetAdvertisement(ctx context.Context, id int64) (*domain.Advertisement, error) {
	ad, err := scanAdvertisement(r.pool.QueryRow(ctx,
		`SELECT `+advertisementColumns+` FROM advertisements WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get advertisement %d: %w", id, err)
	}
	return &ad, nil
}

// CreateAdvertisement inserts ad. A campaign deleted after the caller
// checked it surfaces as a foreign key violation and is reported as
// domain.ErrCampaignNotFound.
func (r *AdvertisementRepository) CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO advertisements (campaign_id, title, content, image_url, target_audience)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`,
		ad.CampaignID, ad.Title, ad.Content, ad.ImageURL, ad.TargetAudience,
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return domain.ErrCampaignNotFound
	}
	if err != nil {
		return fmt.Errorf("insert advertisement: %w", err)
	}
	ad.CreatedAt = ad.CreatedAt.UTC()
	ad.UpdatedAt = ad.UpdatedAt.UTC()
	return nil
}

// UpdateAdvertisement writes the editable columns of ad. campaign_id is
// immutable and not part of the statement.
func (r *AdvertisementRepository) UpdateAdvertisement(ctx context.Context, ad *domain.Advertisement) (bool, error) {
	err := r.pool.QueryRow(ctx, `
        UPDATE advertisements
        SET title = $2, content = $3, image_url = $4, target_audience = $5, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		ad.ID, ad.Title, ad.Content, ad.ImageURL, ad.TargetAudience,
	).Scan(&ad.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update advertisement %d: %w", ad.ID, err)
	}
	ad.UpdatedAt = ad.UpdatedAt.UTC()
	return true, nil
}

// DeleteAdvertisement deletes an advertisement by id.
func (r *AdvertisementRepository) DeleteAdvertisement(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete advertisement %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
