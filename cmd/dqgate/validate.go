package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/dqgate/internal/checkpoint"
	"github.com/gyeh/dqgate/internal/datadocs"
	"github.com/gyeh/dqgate/internal/exitcode"
	"github.com/gyeh/dqgate/internal/logging"
	"github.com/gyeh/dqgate/internal/resultstore"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the expectation suite against the raw CSV",
	Long: "Loads the CSV into a dataframe, evaluates every expectation, writes the\n" +
		"validation result and data docs, and exits nonzero unless all rules pass.",
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.BoolVar(&cfg.OpenDocs, "open-docs", false, "Open the data docs report in a browser on failure")
	f.StringVar(&cfg.SnapshotPath, "snapshot", "", "Write the validated batch as Parquet to this path")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := resolveConfig(); err != nil {
		log.Error().Err(err).Msg("config resolution failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	opts := checkpoint.Options{SnapshotPath: cfg.SnapshotPath}
	if cfg.DSN != "" {
		pool, err := resultstore.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("result store connection failed")
			os.Exit(exitcode.StoreError)
		}
		defer pool.Close()
		opts.Recorder = resultstore.New(pool)
	}

	res, err := checkpoint.Run(ctx, log, &cfg, opts)
	if errors.Is(err, checkpoint.ErrValidationFailed) {
		fmt.Printf("Validation failed: %d of %d expectations broken. Report: %s\n",
			res.Summary.RulesFailed, res.Summary.RulesEvaluated, res.Summary.DocsPath)
		if cfg.OpenDocs {
			if openErr := datadocs.Open(res.Summary.DocsPath); openErr != nil {
				log.Warn().Err(openErr).Msg("could not open data docs")
			}
		}
		os.Exit(exitcode.ValidationFailure)
	}
	if err != nil {
		var pe *checkpoint.PhaseError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("validation run failed")
			switch pe.Phase {
			case "load":
				os.Exit(exitcode.DataError)
			case "record":
				os.Exit(exitcode.StoreError)
			default:
				os.Exit(exitcode.DataError)
			}
		}
		log.Error().Err(err).Msg("validation run failed")
		os.Exit(exitcode.DataError)
	}

	fmt.Printf("Validation successful: %d expectations passed over %d rows (%.1fs)\n",
		res.Summary.RulesEvaluated, res.Summary.Rows, res.Summary.DurationTotal.Seconds())
	return nil
}
