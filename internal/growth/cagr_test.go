package growth

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

func TestCAGR(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		years      int
		want       float64
	}{
		{"doubling over ten years", 100, 200, 10, math.Pow(2, 0.1) - 1},
		{"flat", 50, 50, 9, 0},
		{"decline", 100, 81, 2, -0.1},
		{"zero base", 0, 10, 5, 0},
		{"zero span", 10, 20, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CAGR(tt.start, tt.end, tt.years), 1e-12)
		})
	}
}

func TestSourceRateSmallBaseFallsBackToLinear(t *testing.T) {
	// base 0.05 → (1.0-0.05)/9 / 0.1
	assert.InDelta(t, (1.0-0.05)/9/0.1, SourceRate(0.05, 1.0, 9), 1e-12)
	assert.InDelta(t, 1.0/9/0.1, SourceRate(0, 1.0, 9), 1e-12)
	assert.InDelta(t, CAGR(2, 4, 9), SourceRate(2, 4, 9), 1e-12)
}

func series() []domain.YearRecord {
	return []domain.YearRecord{
		{Year: 2014, TotalUsefulEJ: 1},
		{Year: 2015, TotalUsefulEJ: 200, FossilUsefulEJ: 170, CleanUsefulEJ: 30,
			SourcesUsefulEJ: map[string]float64{domain.Coal: 55, domain.Solar: 0.05, domain.Wind: 2}},
		{Year: 2020, TotalUsefulEJ: 210, FossilUsefulEJ: 175, CleanUsefulEJ: 35},
		{Year: 2024, TotalUsefulEJ: 229.56, FossilUsefulEJ: 186.84, CleanUsefulEJ: 42.72,
			SourcesUsefulEJ: map[string]float64{domain.Coal: 52.82, domain.Solar: 5.753, domain.Wind: 6.743}},
	}
}

func TestHistorical(t *testing.T) {
	r, err := Historical(series(), 2015, 2024)
	require.NoError(t, err)

	assert.Equal(t, "2015-2024", r.CalculationPeriod)
	assert.InDelta(t, CAGR(200, 229.56, 9), r.Total, 1e-12)
	assert.InDelta(t, CAGR(170, 186.84, 9), r.Fossil, 1e-12)
	assert.InDelta(t, CAGR(30, 42.72, 9), r.Clean, 1e-12)
	assert.InDelta(t, CAGR(55, 52.82, 9), r.Source(domain.Coal), 1e-12)
	assert.InDelta(t, (5.753-0.05)/9/0.1, r.Source(domain.Solar), 1e-12)
	assert.InDelta(t, CAGR(2, 6.743, 9), r.Source(domain.Wind), 1e-12)
	// missing on both ends
	assert.Equal(t, 0.0, r.Source(domain.Geothermal))
	assert.Len(t, r.Sources, len(Sources))
}

func TestHistoricalNeedsTwoRecords(t *testing.T) {
	_, err := Historical(series(), 2023, 2024)
	assert.Error(t, err)
}

func TestExtrapolate(t *testing.T) {
	assert.InDelta(t, 186.84*math.Pow(1.01165, 6), Extrapolate(186.84, 0.01165, 6), 1e-9)
	assert.Equal(t, 42.72, Extrapolate(42.72, 0.037, 0))
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "calculated_cagrs.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"total":0.01593,"fossil":0.01165,"clean":0.03706,"sources":{"oil":0.004}}`), 0o644))

	r, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 0.01165, r.Fossil)
	assert.Equal(t, 0.004, r.Source(domain.Oil))

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
