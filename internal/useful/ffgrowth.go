package useful

import "github.com/ANIKETSHETTY47/global-energy-services/internal/domain"

// FFGrowth is the share of a year's change in useful energy that came from fossil fuels.
type FFGrowth struct {
	Year           int     `json:"year"`
	DeltaTotalEJ   float64 `json:"delta_total_ej"`
	DeltaFossilEJ  float64 `json:"delta_fossil_ej"`
	DeltaCleanEJ   float64 `json:"delta_clean_ej"`
	FFGrowthPct    float64 `json:"ff_growth_pct"`
	CleanGrowthPct float64 `json:"clean_growth_pct"`
	FFGrowth5yrAvg float64 `json:"ff_growth_5yr_avg"`
}

const rollingWindow = 5

// FossilGrowthShare computes ΔFossil/ΔTotal × 100 for consecutive records plus a
// trailing five-year average. The ratio is 0 when total useful energy did not change.
func FossilGrowthShare(records []domain.YearRecord) []FFGrowth {
	if len(records) < 2 {
		return nil
	}
	out := make([]FFGrowth, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		prev, curr := records[i-1], records[i]
		dTotal := curr.TotalUsefulEJ - prev.TotalUsefulEJ
		dFossil := curr.FossilUsefulEJ - prev.FossilUsefulEJ
		dClean := curr.CleanUsefulEJ - prev.CleanUsefulEJ

		ff := 0.0
		if dTotal != 0 {
			ff = dFossil / dTotal * 100
		}
		g := FFGrowth{
			Year:          curr.Year,
			DeltaTotalEJ:  domain.Round(dTotal, 2),
			DeltaFossilEJ: domain.Round(dFossil, 2),
			DeltaCleanEJ:  domain.Round(dClean, 2),
			FFGrowthPct:   domain.Round(ff, 1),
		}
		if dTotal > 0 {
			g.CleanGrowthPct = domain.Round(100-ff, 1)
		}
		out = append(out, g)
	}

	for i := range out {
		start := i - (rollingWindow - 1)
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for _, g := range out[start : i+1] {
			sum += g.FFGrowthPct
		}
		out[i].FFGrowth5yrAvg = domain.Round(sum/float64(i+1-start), 1)
	}
	return out
}
