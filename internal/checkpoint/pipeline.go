// Package checkpoint runs an expectation suite against a batch of raw data
// and gates downstream loading on the outcome.
package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/dqgate/internal/config"
	"github.com/gyeh/dqgate/internal/datadocs"
	"github.com/gyeh/dqgate/internal/dataset"
	"github.com/gyeh/dqgate/internal/expect"
	"github.com/gyeh/dqgate/internal/logging"
	"github.com/gyeh/dqgate/internal/model"
	"github.com/gyeh/dqgate/internal/snapshot"
	"github.com/gyeh/dqgate/internal/suitestore"
)

// ErrValidationFailed is the domain error for a batch that loaded fine but
// broke at least one expectation. Distinct from infrastructure failures,
// which surface as PhaseError.
var ErrValidationFailed = errors.New("raw data failed expectation suite validation")

// PhaseError wraps an infrastructure error with the phase where it occurred.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Recorder persists a finished run to an external store. Implemented by
// resultstore.Store; nil means no history is kept.
type Recorder interface {
	RecordRun(ctx context.Context, rec RunRecord) error
}

// RunRecord is the store-facing shape of one finished validation run.
type RunRecord struct {
	RunID          string
	SuiteName      string
	DatasourceName string
	DataAssetName  string
	DataPath       string
	DataSHA256     string
	Rows           int
	Columns        int
	Result         expect.SuiteResult
}

// Options carries the optional tail phases of a run.
type Options struct {
	Recorder     Recorder // record run history when non-nil
	SnapshotPath string   // write the validated batch as Parquet when set
}

// RunResult is everything a completed checkpoint produced. On validation
// failure Run returns both a RunResult (for reporting) and ErrValidationFailed;
// the dataframe must then not be consumed.
type RunResult struct {
	Frame       dataframe.DataFrame
	SuiteResult expect.SuiteResult
	Summary     *model.CheckpointSummary
}

// resultEnvelope is the persisted JSON shape of one validation run.
type resultEnvelope struct {
	RunID          string             `json:"run_id"`
	SuiteName      string             `json:"suite_name"`
	DatasourceName string             `json:"datasource_name"`
	DataAssetName  string             `json:"data_asset_name"`
	DataPath       string             `json:"data_path"`
	DataSHA256     string             `json:"data_sha256"`
	Rows           int                `json:"rows"`
	Columns        int                `json:"columns"`
	Result         expect.SuiteResult `json:"result"`
}

// Run executes the full checkpoint: load → suite lookup → evaluate →
// persist result → render docs → record history → snapshot.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config, opts Options) (*RunResult, error) {
	totalStart := time.Now()
	runID := time.Now().UTC().Format("20060102T150405") + "-" + uuid.NewString()[:8]
	log = logging.ForRun(log, runID)

	// Phase 1: fingerprint and load the batch
	loadStart := time.Now()
	log.Info().Str("file", cfg.DataPath).Msg("loading raw data")
	df, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return nil, &PhaseError{Phase: "load", Err: err}
	}
	sha, err := dataset.Fingerprint(cfg.DataPath)
	if err != nil {
		return nil, &PhaseError{Phase: "load", Err: err}
	}
	loadDur := time.Since(loadStart)
	log.Info().
		Int("rows", df.Nrow()).
		Int("columns", df.Ncol()).
		Str("sha256", sha).
		Dur("duration", loadDur).
		Msg("raw data loaded")

	// Phase 2: suite lookup
	suite, err := suitestore.New(cfg.ProjectDir).Get(cfg.SuiteName)
	if err != nil {
		return nil, &PhaseError{Phase: "suite", Err: err}
	}

	// Phase 3: evaluate
	evalStart := time.Now()
	result := expect.EvaluateSuite(df, suite)
	evalDur := time.Since(evalStart)
	for _, r := range result.Results {
		level := zerolog.InfoLevel
		if !r.Success {
			level = zerolog.WarnLevel
		}
		log.WithLevel(level).
			Str("expectation", r.Expectation.Describe()).
			Bool("success", r.Success).
			Int("unexpected", r.UnexpectedCount).
			Msg("expectation evaluated")
	}

	// Phase 4: persist the validation result
	env := resultEnvelope{
		RunID:          runID,
		SuiteName:      suite.Name,
		DatasourceName: cfg.DatasourceName,
		DataAssetName:  cfg.DataAssetName,
		DataPath:       cfg.DataPath,
		DataSHA256:     sha,
		Rows:           df.Nrow(),
		Columns:        df.Ncol(),
		Result:         result,
	}
	if err := writeResult(cfg.ProjectDir, env); err != nil {
		return nil, &PhaseError{Phase: "persist", Err: err}
	}

	// Phase 5: data docs
	docsStart := time.Now()
	docsPath, err := datadocs.Build(cfg.ProjectDir, datadocs.Page{
		RunID:          runID,
		SuiteName:      suite.Name,
		DatasourceName: cfg.DatasourceName,
		DataAssetName:  cfg.DataAssetName,
		DataPath:       cfg.DataPath,
		DataSHA256:     sha,
		Rows:           df.Nrow(),
		Columns:        df.Ncol(),
		Result:         result,
	})
	if err != nil {
		return nil, &PhaseError{Phase: "docs", Err: err}
	}
	docsDur := time.Since(docsStart)

	// Phase 6: run history (failures are history too)
	if opts.Recorder != nil {
		rec := RunRecord{
			RunID:          runID,
			SuiteName:      suite.Name,
			DatasourceName: cfg.DatasourceName,
			DataAssetName:  cfg.DataAssetName,
			DataPath:       cfg.DataPath,
			DataSHA256:     sha,
			Rows:           df.Nrow(),
			Columns:        df.Ncol(),
			Result:         result,
		}
		if err := opts.Recorder.RecordRun(ctx, rec); err != nil {
			return nil, &PhaseError{Phase: "record", Err: err}
		}
	}

	summary := &model.CheckpointSummary{
		RunID:            runID,
		DataPath:         cfg.DataPath,
		DataSHA256:       sha,
		SuiteName:        suite.Name,
		DatasourceName:   cfg.DatasourceName,
		DataAssetName:    cfg.DataAssetName,
		Rows:             df.Nrow(),
		Columns:          df.Ncol(),
		RulesEvaluated:   len(result.Results),
		RulesFailed:      result.FailedCount(),
		Success:          result.Success,
		DocsPath:         docsPath,
		DurationLoad:     loadDur,
		DurationEvaluate: evalDur,
		DurationDocs:     docsDur,
	}
	res := &RunResult{Frame: df, SuiteResult: result, Summary: summary}

	if !result.Success {
		summary.DurationTotal = time.Since(totalStart)
		log.Warn().
			Int("rules_failed", summary.RulesFailed).
			Str("docs", docsPath).
			Msg("validation failed")
		return res, ErrValidationFailed
	}

	// Phase 7: snapshot the validated batch for downstream consumers
	if opts.SnapshotPath != "" {
		n, err := snapshot.Write(opts.SnapshotPath, df)
		if err != nil {
			return nil, &PhaseError{Phase: "snapshot", Err: err}
		}
		summary.SnapshotPath = opts.SnapshotPath
		log.Info().Int("rows", n).Str("path", opts.SnapshotPath).Msg("snapshot written")
	}

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Int("rules_evaluated", summary.RulesEvaluated).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("validation successful")
	return res, nil
}

// Gate is the pure guard downstream code calls: it returns the loaded
// dataframe only if every expectation passed, and never transforms it.
func Gate(ctx context.Context, log zerolog.Logger, cfg *config.Config) (dataframe.DataFrame, error) {
	res, err := Run(ctx, log, cfg, Options{})
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return res.Frame, nil
}

func writeResult(projectDir string, env resultEnvelope) error {
	dir := filepath.Join(projectDir, "validations")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create validations dir: %w", err)
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal validation result: %w", err)
	}
	path := filepath.Join(dir, env.RunID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write validation result: %w", err)
	}
	return nil
}
