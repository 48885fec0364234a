package snapshot

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
)

const sampleCSV = `id,date,price,bedrooms,bathrooms,sqft_living,sqft_lot,floors,waterfront,view,condition,grade,sqft_above,sqft_basement,yr_built,yr_renovated,zipcode,lat,long,sqft_living15,sqft_lot15
7129300520,20141013T000000,221900,3,1,1180,5650,1,0,0,3,7,1180,0,1955,0,98178,47.5112,-122.257,1340,5650
6414100192,20141209T000000,538000,3,2.25,2570,7242,2,0,0,3,7,2170,400,1951,1991,98125,47.721,-122.319,1690,7639
`

func sampleFrame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df := dataframe.ReadCSV(strings.NewReader(sampleCSV),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		t.Fatalf("ReadCSV: %v", df.Err)
	}
	return df
}

func TestWriteRead_RoundTrip(t *testing.T) {
	df := sampleFrame(t)
	path := filepath.Join(t.TempDir(), "batch.parquet")

	n, err := Write(path, df)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows written, got %d", n)
	}

	rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows read, got %d", len(rows))
	}

	first := rows[0]
	if first.ID != "7129300520" {
		t.Errorf("id: got %q", first.ID)
	}
	if first.Price != 221900 {
		t.Errorf("price: got %g", first.Price)
	}
	if first.Zipcode != "98178" {
		t.Errorf("zipcode: got %q", first.Zipcode)
	}
	if rows[1].Bathrooms != 2.25 {
		t.Errorf("bathrooms: got %g", rows[1].Bathrooms)
	}
}

func TestWrite_MissingColumn(t *testing.T) {
	csv := strings.Replace(sampleCSV, "price", "cost", 1)
	df := dataframe.ReadCSV(strings.NewReader(csv),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	if df.Err != nil {
		t.Fatalf("ReadCSV: %v", df.Err)
	}

	_, err := Write(filepath.Join(t.TempDir(), "batch.parquet"), df)
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !strings.Contains(err.Error(), "price") {
		t.Errorf("error should name the missing column: %v", err)
	}
}
