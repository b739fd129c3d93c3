// Package calibration checks scenario parameters against 2040 fossil targets with a
// clean-displaces-fossil model, and fits adoption curves to historical series.
package calibration

import "math"

// PrimaryEfficiency converts useful totals back to a primary-energy equivalent.
const PrimaryEfficiency = 0.37

// Start is the 2024 state the harness runs from.
type Start struct {
	Year        int     `json:"year"`
	Fossil      float64 `json:"fossil_ej"`
	Clean       float64 `json:"clean_ej"`
	CleanGrowth float64 `json:"clean_growth_ej_per_year"`
	Years       int     `json:"years"`
	RampYears   int     `json:"ramp_years"`
}

// DefaultStart is the calibration starting point.
var DefaultStart = Start{Year: 2024, Fossil: 186.84, Clean: 52.53, CleanGrowth: 2.99, Years: 16, RampYears: 3}

// Scenario holds the displacement parameters of one calibration run.
type Scenario struct {
	Key                    string  `json:"key"`
	Name                   string  `json:"name"`
	CleanAcceleration      float64 `json:"clean_growth_acceleration"`
	FossilBaselineGrowth   float64 `json:"fossil_baseline_growth"`
	FossilDeclineRate      float64 `json:"fossil_decline_rate"`
	DisplacementMultiplier float64 `json:"displacement_multiplier"`
	IntensityImprovement   float64 `json:"energy_intensity_improvement"`
	FossilFloor            float64 `json:"fossil_floor,omitempty"`
	Target2040             float64 `json:"target_2040_fossil"`
	SlowDisplacement       bool    `json:"slow_displacement_curve,omitempty"`
}

var Scenarios = []Scenario{
	{
		Key: "conservative", Name: "Slow Transition (IEA STEPS)",
		CleanAcceleration: 0.006, FossilBaselineGrowth: 0.022, FossilDeclineRate: 0.00003,
		DisplacementMultiplier: 0.43, IntensityImprovement: 0.019, Target2040: 180,
		SlowDisplacement: true,
	},
	{
		Key: "moderate", Name: "Moderate Acceleration",
		CleanAcceleration: 0.055, FossilBaselineGrowth: 0.020, FossilDeclineRate: 0.0009,
		DisplacementMultiplier: 1.15, IntensityImprovement: 0.012, Target2040: 117,
	},
	{
		Key: "aggressive", Name: "Rapid Transition (IEA NZE)",
		CleanAcceleration: 0.082, FossilBaselineGrowth: 0.018, FossilDeclineRate: 0.0022,
		DisplacementMultiplier: 1.85, IntensityImprovement: 0.015, Target2040: 20,
		FossilFloor: 20,
	},
}

// Point is one simulated year.
type Point struct {
	Year         int     `json:"year"`
	Fossil       float64 `json:"fossil_ej"`
	Clean        float64 `json:"clean_ej"`
	Total        float64 `json:"total_ej"`
	CleanGrowth  float64 `json:"clean_growth_ej_per_year"`
	FossilChange float64 `json:"fossil_change_ej"`
}

// Result is the outcome of one scenario run.
type Result struct {
	Scenario      Scenario `json:"scenario"`
	Points        []Point  `json:"points"`
	PeakYear      int      `json:"peak_year,omitempty"`
	FinalFossil   float64  `json:"final_fossil_ej"`
	TargetDiff    float64  `json:"target_diff_ej"`
	TargetDiffPct float64  `json:"target_diff_pct"`
	PrimaryEJ     float64  `json:"primary_equivalent_ej"`
}

// Run simulates one scenario year by year. Clean growth accelerates after a ramp-up,
// the fossil baseline grows at a slowly declining rate less intensity gains, and each
// year's clean growth displaces fossil at an efficiency that rises over the run.
func Run(start Start, sc Scenario) Result {
	fossil, clean := start.Fossil, start.Clean
	cleanGrowth := start.CleanGrowth
	baselineGrowth := sc.FossilBaselineGrowth

	res := Result{Scenario: sc, Points: make([]Point, 0, start.Years)}
	for y := 1; y <= start.Years; y++ {
		ramp := math.Min(float64(y)/float64(start.RampYears), 1)
		cleanGrowth *= 1 + sc.CleanAcceleration*ramp

		baselineGrowth = math.Max(baselineGrowth-sc.FossilDeclineRate, -0.05)
		fossilBaseline := fossil * (1 + baselineGrowth - sc.IntensityImprovement)

		progress := float64(y) / float64(start.Years)
		eff := 0.70 + progress*0.25
		if sc.SlowDisplacement {
			eff = 0.40 + progress*0.40
		}
		eff *= sc.DisplacementMultiplier

		prev := fossil
		fossil = math.Max(fossilBaseline-cleanGrowth*eff, sc.FossilFloor)
		clean += cleanGrowth * (1 - sc.IntensityImprovement*0.3)

		res.Points = append(res.Points, Point{
			Year:         start.Year + y,
			Fossil:       fossil,
			Clean:        clean,
			Total:        fossil + clean,
			CleanGrowth:  cleanGrowth,
			FossilChange: fossil - prev,
		})
	}

	res.PeakYear = PeakYear(res.Points)
	if n := len(res.Points); n > 0 {
		last := res.Points[n-1]
		res.FinalFossil = last.Fossil
		res.TargetDiff = last.Fossil - sc.Target2040
		if sc.Target2040 != 0 {
			res.TargetDiffPct = res.TargetDiff / sc.Target2040 * 100
		}
		res.PrimaryEJ = last.Total / PrimaryEfficiency
	}
	return res
}

// PeakYear is the first year whose fossil value falls and keeps falling for the next
// two years, or 0 when there is no such run.
func PeakYear(points []Point) int {
	for i := 1; i+2 < len(points); i++ {
		if points[i].Fossil < points[i-1].Fossil &&
			points[i+1].Fossil < points[i].Fossil &&
			points[i+2].Fossil < points[i+1].Fossil {
			return points[i].Year
		}
	}
	return 0
}

// RunAll runs every scenario from start.
func RunAll(start Start, scenarios []Scenario) []Result {
	out := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, Run(start, sc))
	}
	return out
}
