package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadapter "campaign-manager/internal/adapter/http"
	"campaign-manager/internal/adapter/postgres"
	"campaign-manager/internal/adapter/usecase"
	"campaign-manager/internal/db"
)

// serve optionally runs database migrations, initializes the database pool
// and repositories, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger
	addr := cfg.DB.Addr()

	if cfg.DB.RunMigrations {
		if err := db.Migrate(addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.DB)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	campaignRepo := postgres.NewCampaignRepository(pool)
	adRepo := postgres.NewAdvertisementRepository(pool)

	handler := httpadapter.NewHandler(
		usecase.NewCampaignUseCase(campaignRepo),
		usecase.NewAdvertisementUseCase(campaignRepo, adRepo),
		pool,
		logger,
		cfg.HTTP,
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
