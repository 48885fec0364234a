package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `id,date,price,bedrooms,bathrooms,sqft_living,sqft_lot,floors,waterfront,view,condition,grade,sqft_above,sqft_basement,yr_built,yr_renovated,zipcode,lat,long,sqft_living15,sqft_lot15
7129300520,20141013T000000,221900,3,1,1180,5650,1,0,0,3,7,1180,0,1955,0,98178,47.5112,-122.257,1340,5650
6414100192,20141209T000000,538000,3,2.25,2570,7242,2,0,0,3,7,2170,400,1951,1991,98125,47.721,-122.319,1690,7639
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kc_house_data.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	df, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if df.Nrow() != 2 {
		t.Errorf("rows: got %d", df.Nrow())
	}
	if df.Ncol() != 21 {
		t.Errorf("columns: got %d", df.Ncol())
	}
	if got := df.Names()[2]; got != "price" {
		t.Errorf("third column: got %q", got)
	}
	if got := df.Col("bathrooms").Elem(1).Float(); got != 2.25 {
		t.Errorf("bathrooms[1]: got %g", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFingerprint(t *testing.T) {
	path := writeSample(t)
	a, err := Fingerprint(path)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}

	b, err := Fingerprint(path)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if a != b {
		t.Error("fingerprint must be stable")
	}

	if err := os.WriteFile(path, []byte(sampleCSV+"x"), 0644); err != nil {
		t.Fatalf("append: %v", err)
	}
	c, err := Fingerprint(path)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if c == a {
		t.Error("fingerprint must change with content")
	}
}
