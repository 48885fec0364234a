package expect

import "github.com/gyeh/dqgate/internal/model"

// DefaultHouseSuite builds the canonical rule set for the raw King County
// house-sales CSV. Bounds fit the published dataset (a 33-bedroom listing
// really exists).
func DefaultHouseSuite(name string) Suite {
	return Suite{
		Name: name,
		Expectations: []Expectation{
			{Kind: ColumnsMatchOrderedList, ColumnList: model.ExpectedColumns},
			{Kind: ValuesNotNull, Column: "price"},
			{Kind: ValuesNotNull, Column: "bedrooms"},
			{Kind: ValuesNotNull, Column: "bathrooms"},
			{Kind: ValuesBetween, Column: "price", Min: 1e4, Max: 1e7},
			{Kind: ValuesBetween, Column: "bedrooms", Min: 0, Max: 33},
			{Kind: ValuesBetween, Column: "bathrooms", Min: 0, Max: 10},
			{Kind: ValuesInSet, Column: "waterfront", ValueSet: []float64{0, 1}},
		},
	}
}
