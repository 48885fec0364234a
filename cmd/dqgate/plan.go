package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/dqgate/internal/dataset"
	"github.com/gyeh/dqgate/internal/exitcode"
	"github.com/gyeh/dqgate/internal/expect"
	"github.com/gyeh/dqgate/internal/logging"
	"github.com/gyeh/dqgate/internal/suitestore"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation (no writes)",
	Long:  "Evaluates the expectation suite and prints per-rule outcomes without writing results, docs or history.",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := resolveConfig(); err != nil {
		log.Error().Err(err).Msg("config resolution failed")
		os.Exit(exitcode.UsageError)
	}

	df, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to load raw data")
		os.Exit(exitcode.DataError)
	}
	sha, err := dataset.Fingerprint(cfg.DataPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash raw data")
		os.Exit(exitcode.DataError)
	}

	suite, err := suitestore.New(cfg.ProjectDir).Get(cfg.SuiteName)
	if err != nil {
		log.Error().Err(err).Msg("suite lookup failed")
		os.Exit(exitcode.DataError)
	}

	result := expect.EvaluateSuite(df, suite)

	fmt.Printf("Batch: %s (%d rows, %d columns, sha256 %s)\n", cfg.DataPath, df.Nrow(), df.Ncol(), sha[:12])
	fmt.Printf("Suite: %s\n\n", suite.Name)
	for _, r := range result.Results {
		status := "PASS"
		if !r.Success {
			status = "FAIL"
		}
		fmt.Printf("  %-4s %-55s unexpected=%d", status, r.Expectation.Describe(), r.UnexpectedCount)
		if r.Detail != "" {
			fmt.Printf("  (%s)", r.Detail)
		}
		fmt.Println()
	}

	if !result.Success {
		fmt.Printf("\n%d of %d expectations would fail\n", result.FailedCount(), len(result.Results))
		os.Exit(exitcode.ValidationFailure)
	}
	fmt.Printf("\nAll %d expectations would pass\n", len(result.Results))
	return nil
}
