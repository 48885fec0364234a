package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the checked-in configs/config.yaml.
const (
	DefaultDataPath   = "data/raw/kc_house_data.csv"
	DefaultProjectDir = "gx"
	DefaultSuiteName  = "kc_house_raw"
	DefaultDatasource = "kc_house_datasource"
	DefaultDataAsset  = "kc_house_data"
)

// Config holds all runtime configuration for a dqgate run.
type Config struct {
	DataPath       string // path to the raw CSV
	ProjectDir     string // root for suites, validation results and data docs
	SuiteName      string
	DatasourceName string
	DataAssetName  string
	DSN            string // optional; enables the validation run store
	SnapshotPath   string // optional; write the validated batch as Parquet
	LogFormat      string // "text" or "json"
	OpenDocs       bool   // open data docs in a browser on failure
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Data struct {
		RawDataPath string `yaml:"raw_data_path"`
	} `yaml:"data"`
	Validation struct {
		ProjectDir           string `yaml:"project_dir"`
		ExpectationSuiteName string `yaml:"expectation_suite_name"`
		DatasourceName       string `yaml:"datasource_name"`
		DataAssetName        string `yaml:"data_asset_name"`
	} `yaml:"validation"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set (by flags) win over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.DataPath == "" {
		c.DataPath = yc.Data.RawDataPath
	}
	if c.ProjectDir == "" {
		c.ProjectDir = yc.Validation.ProjectDir
	}
	if c.SuiteName == "" {
		c.SuiteName = yc.Validation.ExpectationSuiteName
	}
	if c.DatasourceName == "" {
		c.DatasourceName = yc.Validation.DatasourceName
	}
	if c.DataAssetName == "" {
		c.DataAssetName = yc.Validation.DataAssetName
	}
	return nil
}

// ApplyDefaults fills any field still empty after flag and file merging.
func (c *Config) ApplyDefaults() {
	if c.DataPath == "" {
		c.DataPath = DefaultDataPath
	}
	if c.ProjectDir == "" {
		c.ProjectDir = DefaultProjectDir
	}
	if c.SuiteName == "" {
		c.SuiteName = DefaultSuiteName
	}
	if c.DatasourceName == "" {
		c.DatasourceName = DefaultDatasource
	}
	if c.DataAssetName == "" {
		c.DataAssetName = DefaultDataAsset
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("--data or data.raw_data_path is required")
	}
	if c.SuiteName == "" {
		return fmt.Errorf("--suite or validation.expectation_suite_name is required")
	}
	return nil
}

// ValidateWithDSN checks the base fields plus the store DSN.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DQGATE_DB_URL is required")
	}
	return nil
}
