package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var seedAudiences = []string{"students", "parents", "gamers", "commuters", "retirees"}

// Seed inserts demo campaigns with a few advertisements each. It does
// nothing when the campaigns table already holds rows and reports how many
// campaigns were created.
func Seed(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	var existing int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&existing); err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	statuses := []string{"Draft", "Active", "Paused", "Completed"}

	const campaigns = 5
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for i := 1; i <= campaigns; i++ {
			start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -7*i)
			end := start.AddDate(0, 1, 0)
			budget := float64(1000 * (1 + r.Intn(20)))

			var campaignID int64
			err := tx.QueryRow(ctx, `INSERT INTO campaigns
    (name, description, start_date, end_date, budget, status)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
				fmt.Sprintf("Campaign %d", i), fmt.Sprintf("Demo campaign number %d", i),
				start, end, budget, statuses[r.Intn(len(statuses))],
			).Scan(&campaignID)
			if err != nil {
				return err
			}

			for j := 1; j <= 3; j++ {
				_, err = tx.Exec(ctx, `INSERT INTO advertisements
    (campaign_id, title, content, image_url, target_audience)
VALUES ($1, $2, $3, $4, $5)`,
					campaignID,
					fmt.Sprintf("Ad %d for campaign %d", j, i),
					fmt.Sprintf("Copy text of ad %d", j),
					fmt.Sprintf("https://example.com/images/%d-%d.png", campaignID, j),
					seedAudiences[r.Intn(len(seedAudiences))],
				)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return campaigns, nil
}
