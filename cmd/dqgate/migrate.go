package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/dqgate/internal/exitcode"
	"github.com/gyeh/dqgate/internal/logging"
	"github.com/gyeh/dqgate/internal/resultstore"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the result-store schema migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if cfg.DSN == "" {
		log.Error().Msg("--dsn or DQGATE_DB_URL is required")
		os.Exit(exitcode.UsageError)
	}

	pool, err := resultstore.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.StoreError)
	}
	defer pool.Close()

	if err := resultstore.ApplyMigrations(ctx, pool, log); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(exitcode.StoreError)
	}

	log.Info().Msg("all migrations applied successfully")
	return nil
}
