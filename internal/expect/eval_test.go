package expect

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "id,date,price,bedrooms,bathrooms,sqft_living,sqft_lot,floors," +
	"waterfront,view,condition,grade,sqft_above,sqft_basement,yr_built," +
	"yr_renovated,zipcode,lat,long,sqft_living15,sqft_lot15"

var validRows = []string{
	"7129300520,20141013T000000,221900,3,1,1180,5650,1,0,0,3,7,1180,0,1955,0,98178,47.5112,-122.257,1340,5650",
	"6414100192,20141209T000000,538000,3,2.25,2570,7242,2,0,0,3,7,2170,400,1951,1991,98125,47.721,-122.319,1690,7639",
	"5631500400,20150225T000000,180000,2,1,770,10000,1,1,0,3,6,770,0,1933,0,98028,47.7379,-122.233,2720,8062",
}

func frame(t *testing.T, header string, rows ...string) dataframe.DataFrame {
	t.Helper()
	csv := header + "\n" + strings.Join(rows, "\n") + "\n"
	df := dataframe.ReadCSV(strings.NewReader(csv),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	require.NoError(t, df.Err)
	return df
}

func TestEvaluateSuite_ValidData(t *testing.T) {
	df := frame(t, header, validRows...)
	res := EvaluateSuite(df, DefaultHouseSuite("kc_house_raw"))

	assert.True(t, res.Success)
	assert.Equal(t, 0, res.FailedCount())
	require.Len(t, res.Results, 8)
	for _, r := range res.Results {
		assert.True(t, r.Success, "rule %s", r.Expectation.Describe())
		assert.Zero(t, r.UnexpectedCount)
	}
}

func TestEvaluateSuite_MissingPriceColumn(t *testing.T) {
	// drop the price column entirely
	noPriceHeader := strings.Replace(header, "date,price,bedrooms", "date,bedrooms", 1)
	row := "7129300520,20141013T000000,3,1,1180,5650,1,0,0,3,7,1180,0,1955,0,98178,47.5112,-122.257,1340,5650"
	df := frame(t, noPriceHeader, row)

	res := EvaluateSuite(df, DefaultHouseSuite("kc_house_raw"))
	assert.False(t, res.Success)

	for _, r := range res.Results {
		switch {
		case r.Expectation.Kind == ColumnsMatchOrderedList:
			assert.False(t, r.Success)
			assert.Contains(t, r.Detail, "found 20")
		case r.Expectation.Column == "price":
			assert.False(t, r.Success)
			assert.Contains(t, r.Detail, "not found")
		default:
			assert.True(t, r.Success, "rule %s", r.Expectation.Describe())
		}
	}
}

func TestEvaluateSuite_BedroomsOutOfRange(t *testing.T) {
	bad := "2402100895,20140625T000000,640000,34,1.75,1620,4980,1,0,0,4,7,1040,580,1947,0,98133,47.6893,-122.342,1400,4980"
	df := frame(t, header, append(validRows, bad)...)

	res := EvaluateSuite(df, DefaultHouseSuite("kc_house_raw"))
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.FailedCount())

	for _, r := range res.Results {
		if r.Expectation.Kind == ValuesBetween && r.Expectation.Column == "bedrooms" {
			assert.False(t, r.Success)
			assert.Equal(t, 1, r.UnexpectedCount)
			require.Len(t, r.UnexpectedSamples, 1)
			assert.Contains(t, r.UnexpectedSamples[0], "34")
		} else {
			assert.True(t, r.Success, "rule %s", r.Expectation.Describe())
		}
	}
}

func TestEvaluateSuite_NullPrice(t *testing.T) {
	withNull := "9212900260,20140527T000000,,3,1,1780,7470,1,0,0,3,7,1050,730,1960,0,98146,47.5123,-122.337,1780,8113"
	df := frame(t, header, append(validRows, withNull)...)

	res := EvaluateSuite(df, DefaultHouseSuite("kc_house_raw"))
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.FailedCount())

	for _, r := range res.Results {
		if r.Expectation.Kind == ValuesNotNull && r.Expectation.Column == "price" {
			assert.False(t, r.Success)
			assert.Equal(t, 1, r.UnexpectedCount)
		} else {
			// the price range rule must skip the null, not double-count it
			assert.True(t, r.Success, "rule %s", r.Expectation.Describe())
		}
	}
}

func TestEvaluate_InSet(t *testing.T) {
	badWaterfront := "1736800520,20150403T000000,662500,3,2.5,3560,9796,1,2,0,3,8,1860,1700,1965,0,98007,47.6007,-122.145,2210,8925"
	df := frame(t, header, append(validRows, badWaterfront)...)

	r := Evaluate(df, Expectation{Kind: ValuesInSet, Column: "waterfront", ValueSet: []float64{0, 1}})
	assert.False(t, r.Success)
	assert.Equal(t, 4, r.ElementCount)
	assert.Equal(t, 1, r.UnexpectedCount)
}

func TestEvaluate_BetweenBounds(t *testing.T) {
	df := frame(t, header, validRows...)

	// bounds are inclusive
	r := Evaluate(df, Expectation{Kind: ValuesBetween, Column: "price", Min: 180000, Max: 538000})
	assert.True(t, r.Success)

	r = Evaluate(df, Expectation{Kind: ValuesBetween, Column: "price", Min: 180001, Max: 538000})
	assert.False(t, r.Success)
	assert.Equal(t, 1, r.UnexpectedCount)
}

func TestSuiteValidate(t *testing.T) {
	s := DefaultHouseSuite("kc_house_raw")
	require.NoError(t, s.Validate())

	s.Expectations = append(s.Expectations, Expectation{Kind: ValuesBetween, Column: "price", Min: 10, Max: 1})
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min")

	assert.Error(t, Suite{Name: "empty"}.Validate())
	assert.Error(t, Suite{Expectations: []Expectation{{Kind: ValuesNotNull, Column: "x"}}}.Validate())
}
