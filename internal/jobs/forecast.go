package jobs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/calibration"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/export"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/forecast"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/growth"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/useful"
)

// SummaryYears are the milestone years printed by the forecasting jobs.
var SummaryYears = []int{2030, 2040, 2050}

var extrapolationYears = []int{2025, 2030, 2040, 2050}

// deltaRows is how many leading year-on-year changes the forecast job prints.
const deltaRows = 5

// CAGR computes historical growth rates from the global series.
func CAGR(_ context.Context, e *Env) error {
	var ts domain.Timeseries
	if err := e.read(artifact.UsefulTimeseries, &ts); err != nil {
		return err
	}
	rates, err := growth.Historical(ts.Data, e.CAGRStartYear, e.CAGREndYear)
	if err != nil {
		return fmt.Errorf("failed to compute growth rates: %w", err)
	}
	if _, err := e.Writer.Write(e.CAGRFile, rates); err != nil {
		return err
	}

	e.printf("Historical CAGR %s\n", rates.CalculationPeriod)
	e.printf("  total %+.3f%%  fossil %+.3f%%  clean %+.3f%%\n", rates.Total*100, rates.Fossil*100, rates.Clean*100)
	for _, s := range growth.Sources {
		e.printf("  %-11s %+.3f%%\n", s, rates.Source(s)*100)
	}

	base, ok := ts.Record(e.CAGREndYear)
	if !ok {
		return nil
	}
	e.printf("Extrapolation from %d\n", base.Year)
	for _, y := range extrapolationYears {
		n := y - base.Year
		if n < 0 {
			continue
		}
		e.printf("  %d: total %7.2f  fossil %7.2f  clean %7.2f EJ\n", y,
			growth.Extrapolate(base.TotalUsefulEJ, rates.Total, n),
			growth.Extrapolate(base.FossilUsefulEJ, rates.Fossil, n),
			growth.Extrapolate(base.CleanUsefulEJ, rates.Clean, n))
	}
	return nil
}

// baseline loads the global series and the growth rates the forecasters start from.
// Rates are recomputed when the rates file has not been written.
func (e *Env) baseline() (forecast.Baseline, growth.Rates, error) {
	var ts domain.Timeseries
	if err := e.read(artifact.UsefulTimeseries, &ts); err != nil {
		return forecast.Baseline{}, growth.Rates{}, err
	}
	rec, err := useful.Baseline(ts.Data, e.BaseYear)
	if err != nil {
		return forecast.Baseline{}, growth.Rates{}, fmt.Errorf("%w: %d", err, e.BaseYear)
	}

	rates, err := growth.Load(e.Writer.Path(e.CAGRFile))
	if err != nil {
		log.Warn().Err(err).Msg("growth rates unavailable, recomputing")
		if rates, err = growth.Historical(ts.Data, e.CAGRStartYear, e.CAGREndYear); err != nil {
			return forecast.Baseline{}, growth.Rates{}, err
		}
	}
	return forecast.BaselineFrom(rec), rates, nil
}

// scenarios returns the configured scenario set and the method that names it.
func (e *Env) scenarios(base forecast.Baseline) (forecast.Method, []forecast.Config, error) {
	if e.ScenariosFile != "" {
		return forecast.LoadScenarios(e.ScenariosFile, base.Year, e.EndYear)
	}
	cfgs, err := forecast.DefaultScenarios(e.ForecastMethod, base, e.EndYear)
	return e.ForecastMethod, cfgs, err
}

// Forecast projects every scenario and writes the projections document and chart.
func Forecast(_ context.Context, e *Env) error {
	base, rates, err := e.baseline()
	if err != nil {
		return err
	}
	method, cfgs, err := e.scenarios(base)
	if err != nil {
		return err
	}
	model, err := forecast.Describe(method)
	if err != nil {
		return err
	}

	doc := domain.Projections{
		Metadata: domain.Metadata{
			GeneratedAt:     e.Writer.Stamp(),
			Title:           "Energy services demand growth projections",
			Model:           model.Name,
			Version:         model.Version,
			Methodology:     model.Methodology,
			Method:          string(method),
			Unit:            "EJ",
			BaselineYear:    base.Year,
			Baseline:        fmt.Sprintf("%.2f EJ useful (%.2f fossil, %.2f clean)", base.Total, base.Fossil, base.Clean),
			ProjectionYears: fmt.Sprintf("%d-%d", base.Year+1, e.EndYear),
			Extra: map[string]any{
				"growth_rates_period": rates.CalculationPeriod,
			},
		},
	}
	for _, cfg := range cfgs {
		s, err := forecast.Project(base, rates, cfg)
		if err != nil {
			return fmt.Errorf("failed to project %s: %w", cfg.Name, err)
		}
		doc.Scenarios = append(doc.Scenarios, s)
	}

	if _, err := e.Writer.Write(artifact.Projections, doc); err != nil {
		return err
	}
	chart := e.Writer.Path(fmt.Sprintf("projections_%s.png", method))
	if err := export.ProjectionChart(chart, model.Name, doc); err != nil {
		return err
	}
	log.Info().Str("path", chart).Msg("chart written")

	e.printForecast(base, doc)
	return nil
}

func (e *Env) printForecast(base forecast.Baseline, doc domain.Projections) {
	e.printf("%s v%s (%s)\n", doc.Metadata.Model, doc.Metadata.Version, doc.Metadata.Method)
	e.printf("Baseline %d: %s\n", base.Year, doc.Metadata.Baseline)
	start := base.BaseProjection()
	for _, s := range doc.Scenarios {
		e.printf("\n%s\n", s.Name)
		for _, y := range SummaryYears {
			p, ok := s.Projection(y)
			if !ok {
				continue
			}
			e.printf("  %d: total %7.2f  fossil %7.2f (%4.1f%%)  clean %7.2f (%4.1f%%)\n",
				y, p.TotalUsefulEJ, p.FossilUsefulEJ, p.FossilSharePercent, p.CleanUsefulEJ, p.CleanSharePercent)
		}
		if year, peak := forecast.FossilPeak(s); year != 0 {
			e.printf("  fossil peak %d at %.2f EJ\n", year, peak)
		}
		deltas := forecast.Deltas(&start, s.Data)
		if len(deltas) > deltaRows {
			deltas = deltas[:deltaRows]
		}
		for _, d := range deltas {
			e.printf("  %d: total %+6.2f EJ (%+5.2f%%)  fossil %+6.2f EJ (%+5.2f%%)  clean %+6.2f EJ\n",
				d.Year, d.TotalEJ, d.TotalPct, d.FossilEJ, d.FossilPct, d.CleanEJ)
		}
	}
}

type logisticComparison struct {
	Source     string            `json:"source"`
	Fitted     calibration.Fit   `json:"fitted"`
	Configured forecast.Logistic `json:"configured"`
}

type calibrationDoc struct {
	Metadata  domain.Metadata      `json:"metadata"`
	Start     calibration.Start    `json:"start"`
	Scenarios []calibration.Result `json:"scenarios"`
	Logistic  []logisticComparison `json:"logistic_fits,omitempty"`
}

// fitStartYear is where the wind and solar histories become non-trivial.
const fitStartYear = 2000

// Calibrate runs the displacement calibration and, when the global series exists,
// fits logistic curves to the wind and solar history.
func Calibrate(_ context.Context, e *Env) error {
	results := calibration.RunAll(calibration.DefaultStart, calibration.Scenarios)
	doc := calibrationDoc{
		Metadata: domain.Metadata{
			GeneratedAt: e.Writer.Stamp(),
			Title:       "Projection calibration",
			Description: "Fossil displacement by clean growth under three deployment assumptions",
			Unit:        "EJ",
			Notes:       []string{fmt.Sprintf("Primary equivalent assumes %.0f%% conversion efficiency", calibration.PrimaryEfficiency*100)},
		},
		Start:     calibration.DefaultStart,
		Scenarios: results,
	}

	var ts domain.Timeseries
	found, err := e.readOptional(artifact.UsefulTimeseries, &ts)
	if err != nil {
		return err
	}
	if found {
		doc.Logistic = e.fitLogistic(ts)
	}

	if _, err := e.Writer.Write(artifact.Calibration, doc); err != nil {
		return err
	}

	for _, r := range results {
		e.printf("%s\n", r.Scenario.Name)
		for _, p := range r.Points {
			if p.Year%5 != 0 && p.Year != r.Points[len(r.Points)-1].Year {
				continue
			}
			e.printf("  %d: fossil %7.2f  clean %7.2f  total %7.2f\n", p.Year, p.Fossil, p.Clean, p.Total)
		}
		if r.PeakYear != 0 {
			e.printf("  fossil peak %d\n", r.PeakYear)
		} else {
			e.printf("  no fossil peak\n")
		}
		e.printf("  vs target %.0f EJ: %+.2f EJ (%+.1f%%), primary equivalent %.1f EJ\n",
			r.Scenario.Target2040, r.TargetDiff, r.TargetDiffPct, r.PrimaryEJ)
	}
	for _, c := range doc.Logistic {
		e.printf("%s logistic fit: L=%.1f k=%.3f t0=%.1f (R²=%.4f); configured L=%.1f k=%.3f t0=%.1f\n",
			c.Source, c.Fitted.Curve.L, c.Fitted.Curve.K, c.Fitted.Curve.T0, c.Fitted.RSquared,
			c.Configured.L, c.Configured.K, c.Configured.T0)
	}
	return nil
}

func (e *Env) fitLogistic(ts domain.Timeseries) []logisticComparison {
	var configured map[string]forecast.Logistic
	if rec, ok := ts.Record(e.BaseYear); ok {
		if cfgs, err := forecast.DefaultScenarios(forecast.MethodSCurve, forecast.BaselineFrom(rec), e.EndYear); err == nil {
			sc := cfgs[0].SCurve
			configured = map[string]forecast.Logistic{domain.Wind: sc.Wind, domain.Solar: sc.Solar}
		}
	}

	var out []logisticComparison
	for _, src := range []string{domain.Wind, domain.Solar} {
		var years []int
		var values []float64
		for _, r := range ts.Data {
			if r.Year >= fitStartYear && r.Year <= e.BaseYear {
				years = append(years, r.Year)
				values = append(values, r.SourcesUsefulEJ[src])
			}
		}
		fit, err := calibration.FitLogistic(years, values, e.BaseYear)
		if err != nil {
			log.Warn().Err(err).Str("source", src).Msg("logistic fit skipped")
			continue
		}
		out = append(out, logisticComparison{Source: src, Fitted: fit, Configured: configured[src]})
	}
	return out
}
