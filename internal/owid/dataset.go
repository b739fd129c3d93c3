// Package owid reads the Our World in Data energy dataset.
package owid

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrCountryNotFound is returned when a country label is missing from the dataset.
var ErrCountryNotFound = errors.New("country not found in dataset")

// Row is one dataset row keyed by CSV column name. Values stay as strings so the
// cached JSON matches the CSV exactly.
type Row map[string]string

// Float returns the named column as a number. Empty or malformed values are 0.
func (r Row) Float(key string) float64 {
	v, ok := r[key]
	if !ok || v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Year returns the row year; ok is false when it is missing or not an integer.
func (r Row) Year() (int, bool) {
	v := strings.TrimSpace(r["year"])
	if v == "" {
		return 0, false
	}
	y, err := strconv.Atoi(v)
	if err != nil {
		// some exports write years as floats
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil {
			return 0, false
		}
		return int(f), true
	}
	return y, true
}

type Country struct {
	Country string `json:"country"`
	Data    []Row  `json:"data"`
}

// Dataset groups rows by country label.
type Dataset map[string]*Country

// Country returns the rows for name.
func (d Dataset) Country(name string) (*Country, error) {
	c, ok := d[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, name)
	}
	return c, nil
}

// Countries returns the sorted country labels.
func (d Dataset) Countries() []string {
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// YearRange returns the first and last parseable year of a country.
func (c *Country) YearRange() (int, int) {
	first, last := 0, 0
	for _, r := range c.Data {
		y, ok := r.Year()
		if !ok {
			continue
		}
		if first == 0 || y < first {
			first = y
		}
		if y > last {
			last = y
		}
	}
	return first, last
}

// Fields returns the sorted column names of the first row.
func (c *Country) Fields() []string {
	if len(c.Data) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.Data[0]))
	for k := range c.Data[0] {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParseCSV groups CSV rows by their country column. Rows without a country are skipped.
func ParseCSV(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	data := Dataset{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		name := row["country"]
		if name == "" {
			continue
		}
		c, ok := data[name]
		if !ok {
			c = &Country{Country: name}
			data[name] = c
		}
		c.Data = append(c.Data, row)
	}
	return data, nil
}

// LoadCSV parses a CSV file from disk.
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// LoadJSON reads the grouped JSON cache written by the fetcher.
func LoadJSON(path string) (Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	var d Dataset
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	return d, nil
}
