package main

import (
	"context"
	"log/slog"

	"campaign-manager/internal/db"
)

// seed fills an empty database with demo data for local development.
func (a *app) seed(ctx context.Context) error {
	pool, err := db.NewPostgresPool(ctx, a.cfg.DB)
	if err != nil {
		a.logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	n, err := db.Seed(ctx, pool)
	if err != nil {
		return err
	}
	if n == 0 {
		a.logger.Info("database already contains campaigns, nothing seeded")
		return nil
	}
	a.logger.Info("demo data inserted", slog.Int("campaigns", n))
	return nil
}
