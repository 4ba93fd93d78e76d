package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-manager/internal/core/domain"
)

const campaignColumns = `id, name, description, start_date, end_date, budget, status, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.StartDate,
		&c.EndDate,
		&c.Budget,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	c.StartDate = c.StartDate.UTC()
	c.EndDate = c.EndDate.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, err
}

// ListCampaigns returns all campaigns ordered by id.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get campaign %d: %w", id, err)
	}
	return &c, nil
}

// CreateCampaign inserts c. The generated id and timestamps are written
// back into c.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (name, description, start_date, end_date, budget, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`,
		c.Name, c.Description, c.StartDate, c.EndDate, c.Budget, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return nil
}

// UpdateCampaign writes every mutable column of c and bumps updated_at.
// created_at is never touched.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) (bool, error) {
	err := r.pool.QueryRow(ctx, `
        UPDATE campaigns
        SET name = $2, description = $3, start_date = $4, end_date = $5,
            budget = $6, status = $7, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		c.ID, c.Name, c.Description, c.StartDate, c.EndDate, c.Budget, c.Status,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("update campaign %d: %w", c.ID, err)
	}
	c.UpdatedAt = c.UpdatedAt.UTC()
	return true, nil
}

// DeleteCampaign deletes a campaign. Its advertisements are removed by the
// ON DELETE CASCADE foreign key.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete campaign %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
