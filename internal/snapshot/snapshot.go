// Package snapshot writes a validated batch to Parquet so downstream
// consumers can pick it up without re-parsing the CSV.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/dqgate/internal/model"
)

// Write converts the dataframe to HouseSaleRow records and writes them as
// a single Parquet file. Returns the number of rows written.
func Write(path string, df dataframe.DataFrame) (int, error) {
	rows, err := rowsFromFrame(df)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create snapshot: %w", err)
	}

	w := parquet.NewGenericWriter[model.HouseSaleRow](f)
	n, err := w.Write(rows)
	if err != nil {
		w.Close()
		f.Close()
		return n, fmt.Errorf("write snapshot rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return n, fmt.Errorf("close snapshot writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("close snapshot file: %w", err)
	}
	return n, nil
}

// Read loads all rows back from a snapshot file.
func Read(path string) ([]model.HouseSaleRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	r := parquet.NewGenericReader[model.HouseSaleRow](pf)
	defer r.Close()

	rows := make([]model.HouseSaleRow, 0, r.NumRows())
	buf := make([]model.HouseSaleRow, 256)
	for {
		n, err := r.Read(buf)
		rows = append(rows, buf[:n]...)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read snapshot rows: %w", err)
		}
	}
}

// rowsFromFrame maps dataframe records onto HouseSaleRow by column name.
// Cells are taken from the string records, so values survive exactly as
// the CSV carried them.
func rowsFromFrame(df dataframe.DataFrame) ([]model.HouseSaleRow, error) {
	records := df.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("empty dataframe")
	}
	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[name] = i
	}
	for _, name := range model.ExpectedColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("snapshot requires column %q", name)
		}
	}

	rows := make([]model.HouseSaleRow, 0, len(records)-1)
	for lineNo, rec := range records[1:] {
		str := func(name string) string { return rec[idx[name]] }
		num := func(name string) (float64, error) {
			v, err := strconv.ParseFloat(rec[idx[name]], 64)
			if err != nil {
				return 0, fmt.Errorf("row %d, column %s: %w", lineNo, name, err)
			}
			return v, nil
		}

		row := model.HouseSaleRow{
			ID:      str("id"),
			Date:    str("date"),
			Zipcode: str("zipcode"),
		}
		numeric := []struct {
			name string
			dst  *float64
		}{
			{"price", &row.Price}, {"bedrooms", &row.Bedrooms},
			{"bathrooms", &row.Bathrooms}, {"sqft_living", &row.SqftLiving},
			{"sqft_lot", &row.SqftLot}, {"floors", &row.Floors},
			{"waterfront", &row.Waterfront}, {"view", &row.View},
			{"condition", &row.Condition}, {"grade", &row.Grade},
			{"sqft_above", &row.SqftAbove}, {"sqft_basement", &row.SqftBasement},
			{"yr_built", &row.YrBuilt}, {"yr_renovated", &row.YrRenovated},
			{"lat", &row.Lat}, {"long", &row.Long},
			{"sqft_living15", &row.SqftLiving15}, {"sqft_lot15", &row.SqftLot15},
		}
		for _, col := range numeric {
			v, err := num(col.name)
			if err != nil {
				return nil, err
			}
			*col.dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
