package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"campaign-manager/internal/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	withMigrator := func(fn func(m *db.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.DB.Addr()
			m, err := db.NewMigrator(addr.String())
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(m)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withMigrator(func(m *db.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				a.logger.Info("migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert all migrations",
			RunE: withMigrator(func(m *db.Migrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				a.logger.Info("migrations reverted")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			RunE: withMigrator(func(m *db.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				a.logger.Info("schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
				fmt.Println(version)
				return nil
			}),
		},
	)
	return cmd
}
