package validation

import (
	"fmt"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

// Useful-energy reference points for the benchmark year.
const (
	BenchmarkYear      = 2023
	ExpectedUsefulEJ   = 235.0
	UsefulTolerance    = 0.15
	ImpliedSystemEff   = 0.35
	PrimaryLowEJ       = 550.0
	PrimaryHighEJ      = 650.0
	FossilShareLowPct  = 65.0
	FossilShareHighPct = 82.0
)

// UsefulBenchmarks checks the global series against published estimates for year.
func UsefulBenchmarks(ts domain.Timeseries, year int) *Report {
	r := NewReport("Useful energy benchmarks")

	rec, ok := ts.Record(year)
	if !ok {
		r.AddError(Result{
			Level:   LevelUseful,
			Message: fmt.Sprintf("no useful energy record for %d", year),
			Path:    "data",
		})
		return r
	}
	path := func(field string) string { return fmt.Sprintf("data[%d].%s", year, field) }

	r.check(r.AddWarning, LevelUseful, path("total_useful_ej"), "useful energy vs RMI estimate",
		rec.TotalUsefulEJ, ExpectedUsefulEJ*(1-UsefulTolerance), ExpectedUsefulEJ*(1+UsefulTolerance))
	r.check(r.AddWarning, LevelUseful, path("total_useful_ej"), "implied primary energy at 35% efficiency",
		domain.Round(rec.TotalUsefulEJ/ImpliedSystemEff, 1), PrimaryLowEJ, PrimaryHighEJ)
	r.check(r.AddWarning, LevelUseful, path("fossil_share_percent"), "fossil share of useful energy",
		rec.FossilSharePercent, FossilShareLowPct, FossilShareHighPct)
	return r
}
