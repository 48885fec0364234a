// Package dataset loads the raw CSV into a dataframe. No value is
// transformed here; the gate hands downstream code the frame exactly as
// parsed.
package dataset

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// Load reads the CSV at path into a gota dataframe. The file must exist;
// a missing file is reported before any parsing so that no validation is
// attempted against a phantom batch.
func Load(path string) (dataframe.DataFrame, error) {
	if _, err := os.Stat(path); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("raw data file not found at %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse csv %s: %w", path, df.Err)
	}
	return df, nil
}

// Fingerprint computes the hex-encoded SHA-256 of the file at path. It
// identifies the exact batch a validation run executed against.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
