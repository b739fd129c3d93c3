package forecast

import (
	"math"
	"sort"
)

// Logistic is the adoption curve L / (1 + e^{-k(t-t0)}), t in years from the base year.
type Logistic struct {
	L  float64 `json:"saturation_ej" yaml:"saturation_ej"`
	K  float64 `json:"steepness" yaml:"steepness"`
	T0 float64 `json:"midpoint" yaml:"midpoint"`
}

func (l Logistic) At(t float64) float64 {
	return l.L / (1 + math.Exp(-l.K*(t-l.T0)))
}

// Calibrated shifts the curve so that it passes through base at t=0.
func (l Logistic) Calibrated(t, base float64) float64 {
	return l.At(t) - l.At(0) + base
}

// Ramp moves an annual growth rate linearly from StartRate (up to StartYear) to
// EndRate (from EndYear on).
type Ramp struct {
	StartRate float64 `json:"start_rate" yaml:"start_rate"`
	EndRate   float64 `json:"end_rate" yaml:"end_rate"`
	StartYear int     `json:"start_year" yaml:"start_year"`
	EndYear   int     `json:"end_year" yaml:"end_year"`
}

func (r Ramp) Rate(year int) float64 {
	switch {
	case year <= r.StartYear:
		return r.StartRate
	case year >= r.EndYear:
		return r.EndRate
	}
	frac := float64(year-r.StartYear) / float64(r.EndYear-r.StartYear)
	return r.StartRate + (r.EndRate-r.StartRate)*frac
}

// Path compounds the ramp from base at baseYear through endYear.
func (r Ramp) Path(base float64, baseYear, endYear int) map[int]float64 {
	out := map[int]float64{baseYear: base}
	v := base
	for y := baseYear + 1; y <= endYear; y++ {
		v *= 1 + r.Rate(y)
		out[y] = v
	}
	return out
}

// Peaked grows at Rate until PeakYear and changes at Decline afterwards. A nil Rate
// means the source's historical CAGR.
type Peaked struct {
	Rate     *float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	PeakYear int      `json:"peak_year" yaml:"peak_year"`
	Decline  float64  `json:"decline" yaml:"decline"`
}

func (p Peaked) Value(base float64, baseYear, year int, historical float64) float64 {
	rate := historical
	if p.Rate != nil {
		rate = *p.Rate
	}
	if year <= p.PeakYear {
		return base * math.Pow(1+rate, float64(year-baseYear))
	}
	peak := base * math.Pow(1+rate, float64(p.PeakYear-baseYear))
	return peak * math.Pow(1+p.Decline, float64(year-p.PeakYear))
}

// Anchor is a fixed (year, fossil, clean) point of an interpolated trajectory.
type Anchor struct {
	Year   int     `json:"year" yaml:"year"`
	Fossil float64 `json:"fossil_ej" yaml:"fossil_ej"`
	Clean  float64 `json:"clean_ej" yaml:"clean_ej"`
}

// interpolate linearly between the anchors surrounding year. Years outside the
// anchor range take the nearest anchor.
func interpolate(anchors []Anchor, year int) (fossil, clean float64) {
	sorted := append([]Anchor(nil), anchors...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	if year <= sorted[0].Year {
		return sorted[0].Fossil, sorted[0].Clean
	}
	last := sorted[len(sorted)-1]
	if year >= last.Year {
		return last.Fossil, last.Clean
	}
	for i := 0; i < len(sorted)-1; i++ {
		a, b := sorted[i], sorted[i+1]
		if year >= a.Year && year <= b.Year {
			if a.Year == b.Year {
				return a.Fossil, a.Clean
			}
			t := float64(year-a.Year) / float64(b.Year-a.Year)
			return a.Fossil + t*(b.Fossil-a.Fossil), a.Clean + t*(b.Clean-a.Clean)
		}
	}
	return last.Fossil, last.Clean
}

func ptr(v float64) *float64 { return &v }
