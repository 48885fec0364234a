// mkfixture trims the full kc_house_data.csv into a small representative
// fixture. Two-pass: first buckets rows by interesting traits (waterfront,
// renovated, luxury price), then merges the buckets up to the row budget.
// It can also inject rule violations for negative-path fixtures.
// Usage: go run ./cmd/mkfixture --in data/raw/kc_house_data.csv --out testdata/kc_house_small.csv --rows 50
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	in := flag.String("in", "data/raw/kc_house_data.csv", "input csv")
	out := flag.String("out", "testdata/kc_house_small.csv", "output csv")
	maxRows := flag.Int("rows", 50, "max rows to output")
	check := flag.Bool("check", false, "only print stats, don't write")
	inject := flag.String("inject", "", "comma-separated violations: bedrooms,null-price,waterfront,drop-price")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read csv: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "input has no data rows")
		os.Exit(1)
	}
	header, rows := records[0], records[1:]

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, need := range []string{"price", "bedrooms", "waterfront", "yr_renovated"} {
		if _, ok := col[need]; !ok {
			fmt.Fprintf(os.Stderr, "input missing column %s\n", need)
			os.Exit(1)
		}
	}

	num := func(row []string, name string) float64 {
		v, _ := strconv.ParseFloat(row[col[name]], 64)
		return v
	}

	// Pass 1: bucket by trait.
	type bucket struct {
		name string
		rows [][]string
		want int
	}
	buckets := []*bucket{
		{name: "waterfront", want: 5},
		{name: "renovated", want: 10},
		{name: "luxury", want: 10},
		{name: "general", want: 0},
	}
	bucketMap := make(map[string]*bucket)
	for _, b := range buckets {
		bucketMap[b.name] = b
	}

	for _, row := range rows {
		placed := false
		if num(row, "waterfront") == 1 && len(bucketMap["waterfront"].rows) < bucketMap["waterfront"].want {
			bucketMap["waterfront"].rows = append(bucketMap["waterfront"].rows, row)
			placed = true
		}
		if num(row, "yr_renovated") > 0 && len(bucketMap["renovated"].rows) < bucketMap["renovated"].want {
			bucketMap["renovated"].rows = append(bucketMap["renovated"].rows, row)
			placed = true
		}
		if num(row, "price") >= 1e6 && len(bucketMap["luxury"].rows) < bucketMap["luxury"].want {
			bucketMap["luxury"].rows = append(bucketMap["luxury"].rows, row)
			placed = true
		}
		if !placed && len(bucketMap["general"].rows) < *maxRows {
			bucketMap["general"].rows = append(bucketMap["general"].rows, row)
		}
	}
	fmt.Printf("Scanned %d rows\n", len(rows))

	// Pass 2: merge buckets in priority order.
	var selected [][]string
	for _, b := range buckets {
		for _, row := range b.rows {
			if len(selected) >= *maxRows {
				break
			}
			selected = append(selected, row)
		}
	}

	if *check {
		for _, b := range buckets {
			fmt.Printf("  %-10s %d\n", b.name, len(b.rows))
		}
		return
	}

	if len(selected) == 0 {
		fmt.Fprintln(os.Stderr, "no rows selected")
		os.Exit(1)
	}

	outHeader := header
	for _, violation := range strings.Split(*inject, ",") {
		switch strings.TrimSpace(violation) {
		case "":
		case "bedrooms":
			selected[0][col["bedrooms"]] = "34"
		case "null-price":
			selected[0][col["price"]] = ""
		case "waterfront":
			selected[0][col["waterfront"]] = "2"
		case "drop-price":
			outHeader, selected = dropColumn(outHeader, selected, col["price"])
		default:
			fmt.Fprintf(os.Stderr, "unknown violation %q\n", violation)
			os.Exit(1)
		}
	}

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	w := csv.NewWriter(outFile)
	if err := w.Write(outHeader); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}
	if err := w.WriteAll(selected); err != nil {
		fmt.Fprintf(os.Stderr, "write rows: %v\n", err)
		os.Exit(1)
	}
	w.Flush()
	if err := outFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
}

func dropColumn(header []string, rows [][]string, idx int) ([]string, [][]string) {
	newHeader := append(append([]string{}, header[:idx]...), header[idx+1:]...)
	newRows := make([][]string, len(rows))
	for i, row := range rows {
		newRows[i] = append(append([]string{}, row[:idx]...), row[idx+1:]...)
	}
	return newHeader, newRows
}
