package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/dqgate/internal/config"
)

const defaultConfigPath = "configs/config.yaml"

var (
	cfg     config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "dqgate",
	Short: "Data-quality gate for the King County house-sales CSV",
	Long: "dqgate downloads the King County house-sales dataset, defines a declarative\n" +
		"expectation suite over it, and validates the CSV before downstream code is\n" +
		"allowed to load it.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", defaultConfigPath, "Path to YAML config file")
	pf.StringVar(&cfg.DataPath, "data", "", "Path to the raw CSV (overrides config)")
	pf.StringVar(&cfg.ProjectDir, "project-dir", "", "Validation project directory (overrides config)")
	pf.StringVar(&cfg.SuiteName, "suite", "", "Expectation suite name (overrides config)")
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DQGATE_DB_URL"), "Postgres connection string for run history (or set DQGATE_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

// resolveConfig merges the YAML config file into flag values. The default
// config path may be absent; an explicitly requested one may not.
func resolveConfig() error {
	if _, err := os.Stat(cfgFile); err == nil {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			return err
		}
	} else if cfgFile != defaultConfigPath {
		return fmt.Errorf("config file not found: %s", cfgFile)
	}
	cfg.ApplyDefaults()
	return nil
}
