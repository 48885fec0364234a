package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `data:
  raw_data_path: data/raw/kc_house_data.csv
validation:
  project_dir: gx
  expectation_suite_name: kc_house_raw
  datasource_name: kc_house_datasource
  data_asset_name: kc_house_data
`

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte(sampleYAML), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.DataPath != "data/raw/kc_house_data.csv" {
		t.Errorf("unexpected data path: %q", c.DataPath)
	}
	if c.SuiteName != "kc_house_raw" {
		t.Errorf("unexpected suite name: %q", c.SuiteName)
	}
	if c.DatasourceName != "kc_house_datasource" || c.DataAssetName != "kc_house_data" {
		t.Errorf("unexpected datasource/asset: %q / %q", c.DatasourceName, c.DataAssetName)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte(sampleYAML), 0644)

	c := Config{DataPath: "override.csv", SuiteName: "other_suite"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.DataPath != "override.csv" {
		t.Errorf("flag value overwritten: %q", c.DataPath)
	}
	if c.SuiteName != "other_suite" {
		t.Errorf("flag value overwritten: %q", c.SuiteName)
	}
	// unset fields still come from the file
	if c.ProjectDir != "gx" {
		t.Errorf("expected project dir from file, got %q", c.ProjectDir)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyDefaults(t *testing.T) {
	var c Config
	c.ApplyDefaults()
	if c.DataPath != DefaultDataPath {
		t.Errorf("data path default not applied: %q", c.DataPath)
	}
	if c.SuiteName != DefaultSuiteName || c.DatasourceName != DefaultDatasource {
		t.Errorf("suite/datasource defaults not applied: %q / %q", c.SuiteName, c.DatasourceName)
	}
	if c.LogFormat != "text" {
		t.Errorf("log format default not applied: %q", c.LogFormat)
	}
}

func TestValidateWithDSN(t *testing.T) {
	c := Config{DataPath: "x.csv", SuiteName: "s"}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error for missing DSN")
	}
	c.DSN = "postgresql://localhost/dq"
	if err := c.ValidateWithDSN(); err != nil {
		t.Fatalf("ValidateWithDSN: %v", err)
	}
}
