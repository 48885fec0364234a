package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gyeh/dqgate/internal/exitcode"
	"github.com/gyeh/dqgate/internal/fetch"
	"github.com/gyeh/dqgate/internal/logging"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the Kaggle dataset and register it with DVC",
	Long: "Runs the kaggle CLI to download and unzip the dataset, then dvc add to\n" +
		"version it. Requires kaggle credentials (~/.kaggle/kaggle.json) and an\n" +
		"initialized DVC project. Aborts on the first nonzero tool exit.",
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := resolveConfig(); err != nil {
		log.Error().Err(err).Msg("config resolution failed")
		os.Exit(exitcode.UsageError)
	}

	f := fetch.New(log, filepath.Dir(cfg.DataPath))
	csvPath, err := f.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dataset fetch failed")
		os.Exit(exitcode.FetchError)
	}

	fmt.Printf("Dataset ready at %s\n", csvPath)
	fmt.Printf("Remember to commit the generated .dvc file: git add %s.dvc\n", csvPath)
	return nil
}
