package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"campaign-manager/internal/config"
)

// app carries what every subcommand needs once the configuration has been
// loaded by the root command.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// main is the entry point of campaign-manager. Without a subcommand it
// serves the HTTP API.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "campaign-manager",
		Short:         "CRUD API for advertising campaigns and their advertisements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration from environment variables.
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("error", err))
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.serve(cmd.Context())
			},
		},
		newMigrateCmd(a),
		&cobra.Command{
			Use:   "seed",
			Short: "Insert demo campaigns into an empty database",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.seed(cmd.Context())
			},
		},
	)
	return root
}
