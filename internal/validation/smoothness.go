package validation

import (
	"fmt"
	"math"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/forecast"
)

// FossilDeltaYears is how many leading projection years get their fossil change listed.
const FossilDeltaYears = 15

// Smoothness flags year-on-year total changes above thresholdPct and lists the early
// fossil changes of the first scenario. Jumps fail the report only in the first
// scenario; the faster transitions of the others are warnings.
func Smoothness(p domain.Projections, thresholdPct float64) *Report {
	r := NewReport("Projection smoothness")

	for i, s := range p.Scenarios {
		path := fmt.Sprintf("scenarios[%s]", s.Name)
		var maxJump float64
		var maxYear int
		jumps := 0
		flag := r.AddError
		if i > 0 {
			flag = r.AddWarning
		}

		for _, d := range forecast.Deltas(nil, s.Data) {
			pct := math.Abs(d.TotalPct)
			if pct > maxJump {
				maxJump, maxYear = pct, d.Year
			}
			if pct > thresholdPct {
				jumps++
				flag(Result{
					Level:       LevelSmoothness,
					Message:     fmt.Sprintf("%s: discontinuity %d->%d", s.Name, d.Year-1, d.Year),
					Path:        fmt.Sprintf("%s.data[%d].total_useful_ej", path, d.Year),
					ActualValue: domain.Round(d.TotalPct, 2),
					Expected:    fmt.Sprintf("|YoY| <= %.1f%%", thresholdPct),
					Suggestions: []string{"smooth the method parameters around this year"},
				})
			}
		}

		if maxYear != 0 {
			r.AddInfo(Result{
				Level:       LevelSmoothness,
				Message:     fmt.Sprintf("%s: maximum year-over-year change %.2f%% (%d->%d)", s.Name, maxJump, maxYear-1, maxYear),
				Path:        path,
				ActualValue: domain.Round(maxJump, 2),
			})
		}
		if jumps == 0 {
			r.AddInfo(Result{
				Level:   LevelSmoothness,
				Message: fmt.Sprintf("%s: no discontinuities (all changes <= %.1f%%)", s.Name, thresholdPct),
				Path:    path,
			})
		}

		if i == 0 {
			head := s.Data
			if len(head) > FossilDeltaYears {
				head = head[:FossilDeltaYears]
			}
			for _, d := range forecast.Deltas(nil, head) {
				r.AddInfo(Result{
					Level:       LevelSmoothness,
					Message:     fmt.Sprintf("%s: fossil %d change %+.2f EJ (%+.2f%%)", s.Name, d.Year, d.FossilEJ, d.FossilPct),
					Path:        fmt.Sprintf("%s.data[%d].fossil_useful_ej", path, d.Year),
					ActualValue: domain.Round(d.FossilEJ, 2),
				})
			}
		}
	}
	return r
}
