package calibration

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/forecast"
)

var ErrTooFewPoints = errors.New("logistic fit needs at least four points")

// Fit is a logistic curve fitted to a series, with t measured from Origin.
type Fit struct {
	Curve    forecast.Logistic `json:"curve"`
	Origin   int               `json:"origin_year"`
	SSE      float64           `json:"sse"`
	RSquared float64           `json:"r_squared"`
	Points   int               `json:"points"`
}

// FitLogistic fits L, k and t0 to (years, values) by Nelder-Mead on the squared error.
// L and k are searched in log space so they stay positive.
func FitLogistic(years []int, values []float64, origin int) (Fit, error) {
	if len(years) != len(values) {
		return Fit{}, fmt.Errorf("years and values differ in length: %d vs %d", len(years), len(values))
	}
	if len(years) < 4 {
		return Fit{}, ErrTooFewPoints
	}

	ts := make([]float64, len(years))
	for i, y := range years {
		ts[i] = float64(y - origin)
	}
	peak := floats.Max(values)
	if peak <= 0 {
		return Fit{}, errors.New("logistic fit needs a positive series")
	}

	curve := func(x []float64) forecast.Logistic {
		return forecast.Logistic{L: math.Exp(x[0]), K: math.Exp(x[1]), T0: x[2]}
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			c := curve(x)
			var sse float64
			for i, t := range ts {
				d := c.At(t) - values[i]
				sse += d * d
			}
			return sse
		},
	}

	init := []float64{math.Log(2 * peak), math.Log(0.2), ts[len(ts)-1]}
	res, err := optimize.Minimize(problem, init, &optimize.Settings{FuncEvaluations: 20000}, &optimize.NelderMead{})
	if err != nil {
		return Fit{}, fmt.Errorf("failed to fit logistic: %w", err)
	}

	c := curve(res.X)
	est := make([]float64, len(ts))
	for i, t := range ts {
		est[i] = c.At(t)
	}
	return Fit{
		Curve:    c,
		Origin:   origin,
		SSE:      res.F,
		RSquared: stat.RSquaredFrom(est, values, nil),
		Points:   len(ts),
	}, nil
}
