// Package growth derives historical compound annual growth rates from a useful-energy series.
package growth

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

// SmallBaseEJ is the base below which a source switches to linear growth.
const SmallBaseEJ = 0.1

// Sources are the per-source rates written to the rates file.
var Sources = []string{
	domain.Coal, domain.Oil, domain.Gas, domain.Nuclear, domain.Hydro,
	domain.Wind, domain.Solar, domain.Biomass, domain.Geothermal,
}

// Rates is the calculated_cagrs.json document.
type Rates struct {
	Total             float64            `json:"total" yaml:"total"`
	Fossil            float64            `json:"fossil" yaml:"fossil"`
	Clean             float64            `json:"clean" yaml:"clean"`
	Sources           map[string]float64 `json:"sources" yaml:"sources"`
	CalculationPeriod string             `json:"calculation_period" yaml:"calculation_period"`
	Method            string             `json:"method" yaml:"method"`
}

// Source returns the rate for a source, or 0 when it is unknown.
func (r Rates) Source(name string) float64 {
	return r.Sources[name]
}

// CAGR is (end/start)^(1/years) − 1. It returns 0 when the inputs cannot produce a rate.
func CAGR(start, end float64, years int) float64 {
	if start <= 0 || end < 0 || years <= 0 {
		return 0
	}
	return math.Pow(end/start, 1/float64(years)) - 1
}

// SourceRate is CAGR for meaningful bases and average linear growth relative to
// max(base, 0.1) for sources that start near zero.
func SourceRate(start, end float64, years int) float64 {
	if years <= 0 {
		return 0
	}
	if start > SmallBaseEJ {
		return CAGR(start, end, years)
	}
	avg := (end - start) / float64(years)
	return avg / math.Max(start, SmallBaseEJ)
}

// Historical computes rates over the records whose year lies in [startYear, endYear],
// using the first and last record in that window.
func Historical(records []domain.YearRecord, startYear, endYear int) (Rates, error) {
	var window []domain.YearRecord
	for _, r := range records {
		if r.Year >= startYear && r.Year <= endYear {
			window = append(window, r)
		}
	}
	if len(window) < 2 {
		return Rates{}, fmt.Errorf("need at least two records in %d-%d, have %d", startYear, endYear, len(window))
	}
	first, last := window[0], window[len(window)-1]
	years := last.Year - first.Year

	rates := Rates{
		Total:             CAGR(first.TotalUsefulEJ, last.TotalUsefulEJ, years),
		Fossil:            CAGR(first.FossilUsefulEJ, last.FossilUsefulEJ, years),
		Clean:             CAGR(first.CleanUsefulEJ, last.CleanUsefulEJ, years),
		Sources:           make(map[string]float64, len(Sources)),
		CalculationPeriod: fmt.Sprintf("%d-%d", first.Year, last.Year),
		Method:            "Compound Annual Growth Rate from recent historical data (captures policy trends)",
	}
	for _, s := range Sources {
		rates.Sources[s] = SourceRate(first.SourcesUsefulEJ[s], last.SourcesUsefulEJ[s], years)
	}
	return rates, nil
}

// Extrapolate returns value × (1+rate)^years.
func Extrapolate(value, rate float64, years int) float64 {
	return value * math.Pow(1+rate, float64(years))
}

// Load reads a rates file.
func Load(path string) (Rates, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Rates{}, fmt.Errorf("failed to read growth rates %s: %w", path, err)
	}
	var r Rates
	if err := json.Unmarshal(b, &r); err != nil {
		return Rates{}, fmt.Errorf("failed to decode growth rates %s: %w", path, err)
	}
	if r.Sources == nil {
		r.Sources = map[string]float64{}
	}
	return r, nil
}
