package calibration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/forecast"
)

func TestRunFirstYear(t *testing.T) {
	sc := Scenarios[1]
	res := Run(DefaultStart, sc)
	require.Len(t, res.Points, 16)
	assert.Equal(t, 2025, res.Points[0].Year)
	assert.Equal(t, 2040, res.Points[15].Year)

	cg := 2.99 * (1 + 0.055/3)
	fb := 186.84 * (1 + (0.020 - 0.0009) - 0.012)
	eff := (0.70 + 0.25/16) * 1.15

	p := res.Points[0]
	assert.InDelta(t, cg, p.CleanGrowth, 1e-12)
	assert.InDelta(t, fb-cg*eff, p.Fossil, 1e-9)
	assert.InDelta(t, 52.53+cg*(1-0.012*0.3), p.Clean, 1e-9)
	assert.InDelta(t, p.Fossil+p.Clean, p.Total, 1e-12)
	assert.InDelta(t, p.Fossil-186.84, p.FossilChange, 1e-12)
}

func TestRunSummary(t *testing.T) {
	for _, sc := range Scenarios {
		t.Run(sc.Key, func(t *testing.T) {
			res := Run(DefaultStart, sc)
			last := res.Points[len(res.Points)-1]
			assert.Equal(t, last.Fossil, res.FinalFossil)
			assert.InDelta(t, last.Fossil-sc.Target2040, res.TargetDiff, 1e-12)
			assert.InDelta(t, last.Total/0.37, res.PrimaryEJ, 1e-9)
			for _, p := range res.Points {
				assert.GreaterOrEqual(t, p.Fossil, sc.FossilFloor)
			}
		})
	}
}

func TestAggressiveDeclinesFasterThanConservative(t *testing.T) {
	results := RunAll(DefaultStart, Scenarios)
	require.Len(t, results, 3)
	assert.Less(t, results[2].FinalFossil, results[1].FinalFossil)
	assert.Less(t, results[1].FinalFossil, results[0].FinalFossil)
	assert.NotZero(t, results[2].PeakYear)
}

func TestPeakYear(t *testing.T) {
	pts := func(vals ...float64) []Point {
		out := make([]Point, len(vals))
		for i, v := range vals {
			out[i] = Point{Year: 2025 + i, Fossil: v}
		}
		return out
	}
	assert.Equal(t, 2027, PeakYear(pts(100, 101, 100, 99, 98, 97)))
	// a single dip does not count
	assert.Equal(t, 2029, PeakYear(pts(100, 101, 100, 102, 101, 100, 99)))
	assert.Equal(t, 0, PeakYear(pts(100, 101, 102, 103)))
	// the first year cannot be the peak start
	assert.Equal(t, 2026, PeakYear(pts(100, 99, 98, 97)))
}

func TestFitLogisticRecoversCurve(t *testing.T) {
	want := forecast.Logistic{L: 80, K: 0.3, T0: 2}
	var years []int
	var values []float64
	for y := 2000; y <= 2040; y++ {
		years = append(years, y)
		values = append(values, want.At(float64(y-2024)))
	}

	fit, err := FitLogistic(years, values, 2024)
	require.NoError(t, err)
	assert.InDelta(t, want.L, fit.Curve.L, 1.0)
	assert.InDelta(t, want.K, fit.Curve.K, 0.01)
	assert.InDelta(t, want.T0, fit.Curve.T0, 0.2)
	assert.Greater(t, fit.RSquared, 0.999)
	assert.Equal(t, 41, fit.Points)
}

func TestFitLogisticInputErrors(t *testing.T) {
	_, err := FitLogistic([]int{2020, 2021}, []float64{1, 2}, 2024)
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = FitLogistic([]int{2020}, []float64{1, 2}, 2024)
	assert.Error(t, err)

	_, err = FitLogistic([]int{1, 2, 3, 4}, []float64{0, 0, 0, 0}, 2024)
	assert.Error(t, err)
}
