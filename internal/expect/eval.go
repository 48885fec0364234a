package expect

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const maxUnexpectedSamples = 5

// EvaluateSuite runs every rule in the suite against the dataframe. Rules
// are independent: a structural failure in one (missing column, header
// drift) never stops the others from evaluating.
func EvaluateSuite(df dataframe.DataFrame, s Suite) SuiteResult {
	out := SuiteResult{
		SuiteName:   s.Name,
		Success:     true,
		EvaluatedAt: time.Now().UTC(),
		Results:     make([]Result, 0, len(s.Expectations)),
	}
	for _, e := range s.Expectations {
		res := Evaluate(df, e)
		if !res.Success {
			out.Success = false
		}
		out.Results = append(out.Results, res)
	}
	return out
}

// Evaluate runs a single rule against the dataframe.
func Evaluate(df dataframe.DataFrame, e Expectation) Result {
	switch e.Kind {
	case ColumnsMatchOrderedList:
		return evalOrderedColumns(df, e)
	case ValuesNotNull:
		return evalNotNull(df, e)
	case ValuesBetween:
		return evalBetween(df, e)
	case ValuesInSet:
		return evalInSet(df, e)
	}
	return Result{Expectation: e, Detail: fmt.Sprintf("unknown expectation kind %q", e.Kind)}
}

func evalOrderedColumns(df dataframe.DataFrame, e Expectation) Result {
	res := Result{Expectation: e, ElementCount: df.Ncol()}
	names := df.Names()
	if len(names) != len(e.ColumnList) {
		res.Detail = fmt.Sprintf("expected %d columns, found %d", len(e.ColumnList), len(names))
		return res
	}
	for i, want := range e.ColumnList {
		if names[i] != want {
			res.Detail = fmt.Sprintf("column %d: expected %q, found %q", i, want, names[i])
			return res
		}
	}
	res.Success = true
	return res
}

func evalNotNull(df dataframe.DataFrame, e Expectation) Result {
	res := Result{Expectation: e}
	col, ok := column(df, e.Column)
	if !ok {
		res.Detail = fmt.Sprintf("column %q not found", e.Column)
		return res
	}
	res.ElementCount = col.Len()
	for i := 0; i < col.Len(); i++ {
		if col.Elem(i).IsNA() {
			res.UnexpectedCount++
			if len(res.UnexpectedSamples) < maxUnexpectedSamples {
				res.UnexpectedSamples = append(res.UnexpectedSamples, fmt.Sprintf("row %d: null", i))
			}
		}
	}
	res.Success = res.UnexpectedCount == 0
	return res
}

func evalBetween(df dataframe.DataFrame, e Expectation) Result {
	return evalNumeric(df, e, func(v float64) bool {
		return v >= e.Min && v <= e.Max
	})
}

func evalInSet(df dataframe.DataFrame, e Expectation) Result {
	allowed := make(map[float64]bool, len(e.ValueSet))
	for _, v := range e.ValueSet {
		allowed[v] = true
	}
	return evalNumeric(df, e, func(v float64) bool {
		return allowed[v]
	})
}

// evalNumeric applies a per-value predicate to the named column. Null
// elements are skipped: null-ness is the not-null rule's concern, and
// counting a null twice would misattribute the failure.
func evalNumeric(df dataframe.DataFrame, e Expectation, ok func(float64) bool) Result {
	res := Result{Expectation: e}
	col, found := column(df, e.Column)
	if !found {
		res.Detail = fmt.Sprintf("column %q not found", e.Column)
		return res
	}
	res.ElementCount = col.Len()
	for i := 0; i < col.Len(); i++ {
		el := col.Elem(i)
		if el.IsNA() {
			continue
		}
		v := el.Float()
		// Non-numeric garbage in a numeric rule's column is unexpected.
		if math.IsNaN(v) || !ok(v) {
			res.UnexpectedCount++
			if len(res.UnexpectedSamples) < maxUnexpectedSamples {
				res.UnexpectedSamples = append(res.UnexpectedSamples,
					fmt.Sprintf("row %d: %s", i, el.String()))
			}
		}
	}
	res.Success = res.UnexpectedCount == 0
	return res
}

func column(df dataframe.DataFrame, name string) (series.Series, bool) {
	for _, n := range df.Names() {
		if n == name {
			return df.Col(name), true
		}
	}
	return series.Series{}, false
}
