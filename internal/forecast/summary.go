package forecast

import "github.com/ANIKETSHETTY47/global-energy-services/internal/domain"

// Delta is the change between two consecutive projection years.
type Delta struct {
	Year      int
	TotalEJ   float64
	FossilEJ  float64
	CleanEJ   float64
	TotalPct  float64
	FossilPct float64
}

// Deltas returns year-on-year changes, starting from prev when it is non-nil.
func Deltas(prev *domain.Projection, data []domain.Projection) []Delta {
	var out []Delta
	for i, p := range data {
		var before domain.Projection
		switch {
		case i > 0:
			before = data[i-1]
		case prev != nil:
			before = *prev
		default:
			continue
		}
		d := Delta{
			Year:     p.Year,
			TotalEJ:  p.TotalUsefulEJ - before.TotalUsefulEJ,
			FossilEJ: p.FossilUsefulEJ - before.FossilUsefulEJ,
			CleanEJ:  p.CleanUsefulEJ - before.CleanUsefulEJ,
		}
		if before.TotalUsefulEJ > 0 {
			d.TotalPct = d.TotalEJ / before.TotalUsefulEJ * 100
		}
		if before.FossilUsefulEJ > 0 {
			d.FossilPct = d.FossilEJ / before.FossilUsefulEJ * 100
		}
		out = append(out, d)
	}
	return out
}

// FossilPeak returns the first year with the highest fossil value.
func FossilPeak(s domain.Scenario) (int, float64) {
	var year int
	var peak float64
	for _, p := range s.Data {
		if year == 0 || p.FossilUsefulEJ > peak {
			year, peak = p.Year, p.FossilUsefulEJ
		}
	}
	return year, peak
}

// BaseProjection presents the baseline as a projection so deltas can start from it.
func (b Baseline) BaseProjection() domain.Projection {
	return domain.Projection{
		Year:           b.Year,
		TotalUsefulEJ:  b.Total,
		FossilUsefulEJ: b.Fossil,
		CleanUsefulEJ:  b.Clean,
	}
}
