package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/dqgate/internal/exitcode"
	"github.com/gyeh/dqgate/internal/expect"
	"github.com/gyeh/dqgate/internal/logging"
	"github.com/gyeh/dqgate/internal/suitestore"
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Create or update the expectation suite",
	Long: "Writes the canonical rule set for the raw CSV into the project directory.\n" +
		"Re-running replaces an existing suite of the same name.",
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}

func runSuite(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := resolveConfig(); err != nil {
		log.Error().Err(err).Msg("config resolution failed")
		os.Exit(exitcode.UsageError)
	}

	suite := expect.DefaultHouseSuite(cfg.SuiteName)
	store := suitestore.New(cfg.ProjectDir)
	if err := store.AddOrUpdate(suite); err != nil {
		log.Error().Err(err).Msg("suite definition failed")
		os.Exit(exitcode.DataError)
	}

	log.Info().
		Str("suite", suite.Name).
		Int("expectations", len(suite.Expectations)).
		Msg("expectation suite stored")
	fmt.Printf("Suite %q stored with %d expectations\n", suite.Name, len(suite.Expectations))
	return nil
}
