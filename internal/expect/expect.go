// Package expect defines the declarative data-quality rules the gate runs
// against a loaded dataframe, and evaluates them. The rule set is fixed:
// ordered column list, non-null, numeric range, set membership. Each rule
// evaluates independently; the suite outcome is the AND of all rules.
package expect

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported rule kinds. The string values are
// what gets serialized into suite files and validation results.
type Kind string

const (
	ColumnsMatchOrderedList Kind = "expect_table_columns_to_match_ordered_list"
	ValuesNotNull           Kind = "expect_column_values_to_not_be_null"
	ValuesBetween           Kind = "expect_column_values_to_be_between"
	ValuesInSet             Kind = "expect_column_values_to_be_in_set"
)

// Expectation is a single declarative rule. Which fields are meaningful
// depends on Kind: ColumnList for the ordered-list rule, Column for the
// rest, Min/Max for range rules, ValueSet for membership rules.
type Expectation struct {
	Kind       Kind      `yaml:"kind" json:"kind"`
	Column     string    `yaml:"column,omitempty" json:"column,omitempty"`
	ColumnList []string  `yaml:"column_list,omitempty,flow" json:"column_list,omitempty"`
	Min        float64   `yaml:"min,omitempty" json:"min,omitempty"`
	Max        float64   `yaml:"max,omitempty" json:"max,omitempty"`
	ValueSet   []float64 `yaml:"value_set,omitempty,flow" json:"value_set,omitempty"`
}

// Describe returns a one-line human-readable form of the rule, used in
// logs and data docs.
func (e Expectation) Describe() string {
	switch e.Kind {
	case ColumnsMatchOrderedList:
		return fmt.Sprintf("table columns match ordered list of %d", len(e.ColumnList))
	case ValuesNotNull:
		return fmt.Sprintf("%s: values not null", e.Column)
	case ValuesBetween:
		return fmt.Sprintf("%s: values in [%g, %g]", e.Column, e.Min, e.Max)
	case ValuesInSet:
		parts := make([]string, len(e.ValueSet))
		for i, v := range e.ValueSet {
			parts[i] = fmt.Sprintf("%g", v)
		}
		return fmt.Sprintf("%s: values in {%s}", e.Column, strings.Join(parts, ", "))
	}
	return string(e.Kind)
}

// Validate rejects rules whose parameters make no sense for their kind.
func (e Expectation) Validate() error {
	switch e.Kind {
	case ColumnsMatchOrderedList:
		if len(e.ColumnList) == 0 {
			return fmt.Errorf("%s: empty column_list", e.Kind)
		}
	case ValuesNotNull:
		if e.Column == "" {
			return fmt.Errorf("%s: column is required", e.Kind)
		}
	case ValuesBetween:
		if e.Column == "" {
			return fmt.Errorf("%s: column is required", e.Kind)
		}
		if e.Min > e.Max {
			return fmt.Errorf("%s: min %g > max %g", e.Kind, e.Min, e.Max)
		}
	case ValuesInSet:
		if e.Column == "" {
			return fmt.Errorf("%s: column is required", e.Kind)
		}
		if len(e.ValueSet) == 0 {
			return fmt.Errorf("%s: empty value_set", e.Kind)
		}
	default:
		return fmt.Errorf("unknown expectation kind %q", e.Kind)
	}
	return nil
}

// Suite is a named collection of expectations. Rule order carries no
// semantics; it is preserved only for stable serialization and reporting.
type Suite struct {
	Name         string        `yaml:"name" json:"name"`
	Expectations []Expectation `yaml:"expectations" json:"expectations"`
}

// Validate checks every rule in the suite.
func (s Suite) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("suite name is required")
	}
	if len(s.Expectations) == 0 {
		return fmt.Errorf("suite %q has no expectations", s.Name)
	}
	for i, e := range s.Expectations {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("expectation %d: %w", i, err)
		}
	}
	return nil
}
