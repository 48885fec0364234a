package model

// HouseSaleRow mirrors one record of kc_house_data.csv. Numeric fields are
// float64 matching the CSV representation (bathrooms and floors carry
// fractional values; the rest happen to be whole numbers).
type HouseSaleRow struct {
	ID           string  `parquet:"id"`
	Date         string  `parquet:"date"`
	Price        float64 `parquet:"price"`
	Bedrooms     float64 `parquet:"bedrooms"`
	Bathrooms    float64 `parquet:"bathrooms"`
	SqftLiving   float64 `parquet:"sqft_living"`
	SqftLot      float64 `parquet:"sqft_lot"`
	Floors       float64 `parquet:"floors"`
	Waterfront   float64 `parquet:"waterfront"`
	View         float64 `parquet:"view"`
	Condition    float64 `parquet:"condition"`
	Grade        float64 `parquet:"grade"`
	SqftAbove    float64 `parquet:"sqft_above"`
	SqftBasement float64 `parquet:"sqft_basement"`
	YrBuilt      float64 `parquet:"yr_built"`
	YrRenovated  float64 `parquet:"yr_renovated"`
	Zipcode      string  `parquet:"zipcode"`
	Lat          float64 `parquet:"lat"`
	Long         float64 `parquet:"long"`
	SqftLiving15 float64 `parquet:"sqft_living15"`
	SqftLot15    float64 `parquet:"sqft_lot15"`
}

// ExpectedColumns is the exact ordered header of the raw CSV. Validation
// compares against this list; any drift fails the ordered-list rule.
var ExpectedColumns = []string{
	"id", "date", "price", "bedrooms", "bathrooms", "sqft_living",
	"sqft_lot", "floors", "waterfront", "view", "condition", "grade",
	"sqft_above", "sqft_basement", "yr_built", "yr_renovated",
	"zipcode", "lat", "long", "sqft_living15", "sqft_lot15",
}
