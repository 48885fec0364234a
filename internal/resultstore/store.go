package resultstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/dqgate/internal/checkpoint"
)

// ErrNoRuns reports that a suite has no recorded history.
var ErrNoRuns = errors.New("no recorded validation runs")

// Store persists validation runs and their per-rule results.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps an existing pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// RunInfo is one row of run history.
type RunInfo struct {
	RunID          string
	SuiteName      string
	DataSHA256     string
	Rows           int64
	RulesEvaluated int
	RulesFailed    int
	Success        bool
	EvaluatedAt    time.Time
}

// RecordRun inserts the run and all its rule results in one transaction.
func (s *Store) RecordRun(ctx context.Context, rec checkpoint.RunRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	result := rec.Result
	_, err = tx.Exec(ctx, insertRunSQL,
		rec.RunID, rec.SuiteName, rec.DatasourceName, rec.DataAssetName,
		rec.DataPath, rec.DataSHA256, int64(rec.Rows), int64(rec.Columns),
		len(result.Results), result.FailedCount(), result.Success, result.EvaluatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", rec.RunID, err)
	}

	for i, r := range result.Results {
		var column *string
		if r.Expectation.Column != "" {
			column = &r.Expectation.Column
		}
		var detail *string
		if r.Detail != "" {
			detail = &r.Detail
		}
		_, err = tx.Exec(ctx, insertRuleResultSQL,
			rec.RunID, i, string(r.Expectation.Kind), column,
			r.Success, int64(r.ElementCount), int64(r.UnexpectedCount), detail,
		)
		if err != nil {
			return fmt.Errorf("insert rule result %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LastRun returns the most recent run for a suite, or ErrNoRuns.
func (s *Store) LastRun(ctx context.Context, suiteName string) (RunInfo, error) {
	var info RunInfo
	err := s.pool.QueryRow(ctx, lastRunSQL, suiteName).Scan(
		&info.RunID, &info.SuiteName, &info.DataSHA256, &info.Rows,
		&info.RulesEvaluated, &info.RulesFailed, &info.Success, &info.EvaluatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return RunInfo{}, fmt.Errorf("%w: suite %s", ErrNoRuns, suiteName)
	}
	if err != nil {
		return RunInfo{}, fmt.Errorf("query last run: %w", err)
	}
	return info, nil
}

// ListRuns returns up to limit runs for a suite, newest first.
func (s *Store) ListRuns(ctx context.Context, suiteName string, limit int) ([]RunInfo, error) {
	rows, err := s.pool.Query(ctx, listRunsSQL, suiteName, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var infos []RunInfo
	for rows.Next() {
		var info RunInfo
		if err := rows.Scan(
			&info.RunID, &info.SuiteName, &info.DataSHA256, &info.Rows,
			&info.RulesEvaluated, &info.RulesFailed, &info.Success, &info.EvaluatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
