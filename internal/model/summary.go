package model

import "time"

// CheckpointSummary captures metrics from a single validation run.
type CheckpointSummary struct {
	RunID            string
	DataPath         string
	DataSHA256       string
	SuiteName        string
	DatasourceName   string
	DataAssetName    string
	Rows             int
	Columns          int
	RulesEvaluated   int
	RulesFailed      int
	Success          bool
	DocsPath         string
	SnapshotPath     string
	DurationLoad     time.Duration
	DurationEvaluate time.Duration
	DurationDocs     time.Duration
	DurationTotal    time.Duration
}
