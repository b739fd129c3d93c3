package owid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `country,year,iso_code,coal_consumption,oil_consumption
World,2023,,45000.5,54000
World,2024,,45500,
China,2024,CHN,24000,abc
,2024,,1,1
`

func TestParseCSVGroupsByCountry(t *testing.T) {
	d, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"China", "World"}, d.Countries())

	world, err := d.Country("World")
	require.NoError(t, err)
	require.Len(t, world.Data, 2)
	assert.Equal(t, 45000.5, world.Data[0].Float("coal_consumption"))

	first, last := world.YearRange()
	assert.Equal(t, 2023, first)
	assert.Equal(t, 2024, last)
	assert.Equal(t, []string{"coal_consumption", "country", "iso_code", "oil_consumption", "year"}, world.Fields())

	_, err = d.Country("Atlantis")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestRowFloatDefaultsToZero(t *testing.T) {
	r := Row{"a": "", "b": "abc", "c": " 1.5 "}
	assert.Equal(t, 0.0, r.Float("a"))
	assert.Equal(t, 0.0, r.Float("b"))
	assert.Equal(t, 1.5, r.Float("c"))
	assert.Equal(t, 0.0, r.Float("missing"))

	for _, v := range []string{"NaN", "nan", "Inf", "-Inf", "+infinity", "1e400"} {
		assert.Equal(t, 0.0, Row{"x": v}.Float("x"), v)
	}
}

func TestRowYear(t *testing.T) {
	y, ok := Row{"year": "2024"}.Year()
	assert.True(t, ok)
	assert.Equal(t, 2024, y)

	y, ok = Row{"year": "1999.0"}.Year()
	assert.True(t, ok)
	assert.Equal(t, 1999, y)

	_, ok = Row{"year": ""}.Year()
	assert.False(t, ok)
	_, ok = Row{"year": "n/a"}.Year()
	assert.False(t, ok)
}

func TestFetcherWritesAllCopies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := NewFetcher(srv.URL, filepath.Join(dir, "downloads"), filepath.Join(dir, "cache"), 5*time.Second)
	f.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	data, res, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Equal(t, filepath.Join(dir, "downloads", "owid_energy_20250102_030405.csv"), res.CSVPath)

	for _, p := range []string{res.CSVPath, res.LatestCSVPath, res.JSONPath, res.LatestJSONPath} {
		assert.FileExists(t, p)
	}
	assert.DirExists(t, filepath.Join(dir, "cache"))

	raw, err := os.ReadFile(res.LatestCSVPath)
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(raw))

	cached, err := LoadJSON(res.LatestJSONPath)
	require.NoError(t, err)
	world, err := cached.Country("World")
	require.NoError(t, err)
	assert.Equal(t, "45500", world.Data[1]["coal_consumption"])
}

func TestFetcherRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, t.TempDir(), t.TempDir(), time.Second)
	_, _, err := f.Fetch(context.Background())
	assert.Error(t, err)
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
