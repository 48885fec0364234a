package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/dqgate/internal/exitcode"
	"github.com/gyeh/dqgate/internal/logging"
	"github.com/gyeh/dqgate/internal/resultstore"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded validation runs for the suite",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := resolveConfig(); err != nil {
		log.Error().Err(err).Msg("config resolution failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := resultstore.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.StoreError)
	}
	defer pool.Close()

	store := resultstore.New(pool)
	runs, err := store.ListRuns(ctx, cfg.SuiteName, historyLimit)
	if err != nil {
		log.Error().Err(err).Msg("history query failed")
		os.Exit(exitcode.StoreError)
	}
	if len(runs) == 0 {
		fmt.Printf("No recorded runs for suite %q\n", cfg.SuiteName)
		return nil
	}

	fmt.Printf("%-28s %-8s %8s %7s  %s\n", "RUN", "RESULT", "ROWS", "FAILED", "EVALUATED AT")
	for _, r := range runs {
		result := "pass"
		if !r.Success {
			result = "FAIL"
		}
		fmt.Printf("%-28s %-8s %8d %7d  %s\n",
			r.RunID, result, r.Rows, r.RulesFailed, r.EvaluatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
