package expect

import "time"

// Result is the outcome of one rule against one batch.
type Result struct {
	Expectation     Expectation `json:"expectation"`
	Success         bool        `json:"success"`
	ElementCount    int         `json:"element_count"`
	UnexpectedCount int         `json:"unexpected_count"`
	// UnexpectedSamples holds up to a handful of offending values (or row
	// references for null checks), enough for a human to locate the damage.
	UnexpectedSamples []string `json:"unexpected_samples,omitempty"`
	// Detail carries structural diagnostics, e.g. a missing column or a
	// header mismatch.
	Detail string `json:"detail,omitempty"`
}

// SuiteResult is the outcome of a whole suite: per-rule results plus the
// AND-reduced success flag.
type SuiteResult struct {
	SuiteName   string    `json:"suite_name"`
	Success     bool      `json:"success"`
	EvaluatedAt time.Time `json:"evaluated_at"`
	Results     []Result  `json:"results"`
}

// FailedCount returns how many rules failed.
func (r SuiteResult) FailedCount() int {
	n := 0
	for _, res := range r.Results {
		if !res.Success {
			n++
		}
	}
	return n
}
