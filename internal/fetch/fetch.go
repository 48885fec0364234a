// Package fetch downloads the raw Kaggle dataset and registers it with DVC.
// Both tools run as blocking subprocesses: a nonzero exit aborts the fetch
// with no retry, and a hung tool hangs the fetch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// KaggleSlug identifies the House Sales in King County dataset.
	KaggleSlug = "harlfoxem/housesalesprediction"
	// CSVName is the file the Kaggle archive unzips to.
	CSVName = "kc_house_data.csv"
)

// Fetcher drives the external download and version-control tools. Binary
// names are fields so tests can substitute stubs.
type Fetcher struct {
	KaggleBin string
	DVCBin    string
	RawDir    string
	Stdout    io.Writer
	Stderr    io.Writer
	Log       zerolog.Logger
}

// New returns a Fetcher with the real tool names, writing tool output
// straight through to this process's stdout/stderr.
func New(log zerolog.Logger, rawDir string) *Fetcher {
	return &Fetcher{
		KaggleBin: "kaggle",
		DVCBin:    "dvc",
		RawDir:    rawDir,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Log:       log,
	}
}

// Run downloads the dataset and adds it to DVC. Returns the path of the
// downloaded CSV.
func (f *Fetcher) Run(ctx context.Context) (string, error) {
	if err := os.MkdirAll(f.RawDir, 0755); err != nil {
		return "", fmt.Errorf("create raw data dir: %w", err)
	}

	f.Log.Info().Str("dataset", KaggleSlug).Str("dir", f.RawDir).Msg("downloading dataset")
	if err := f.run(ctx, f.KaggleBin, "datasets", "download", "-d", KaggleSlug, "-p", f.RawDir, "--unzip"); err != nil {
		return "", fmt.Errorf("kaggle download: %w", err)
	}

	csvPath := filepath.Join(f.RawDir, CSVName)
	f.Log.Info().Str("file", csvPath).Msg("registering dataset with dvc")
	if err := f.run(ctx, f.DVCBin, "add", csvPath); err != nil {
		return "", fmt.Errorf("dvc add: %w", err)
	}

	// status is informational; a failure here is not worth aborting over
	if err := f.run(ctx, f.DVCBin, "status"); err != nil {
		f.Log.Warn().Err(err).Msg("dvc status failed")
	}

	return csvPath, nil
}

func (f *Fetcher) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = f.Stdout
	cmd.Stderr = f.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
