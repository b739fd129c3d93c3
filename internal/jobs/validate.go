package jobs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/validation"
)

type validationDoc struct {
	GeneratedAt string               `json:"generated_at"`
	Valid       bool                 `json:"valid"`
	Summary     string               `json:"summary"`
	Reports     []*validation.Report `json:"reports"`
}

// Validate checks whichever artifacts exist, prints the reports and writes them. It
// never fails because of findings; only I/O errors are returned.
func Validate(ctx context.Context, e *Env) error {
	var reports []*validation.Report

	var proj domain.Projections
	if ok, err := e.readOptional(artifact.Projections, &proj); err != nil {
		return err
	} else if ok {
		reports = append(reports, validation.Smoothness(proj, e.SmoothnessPct))
	} else {
		log.Warn().Str("artifact", artifact.Projections).Msg("not found, smoothness checks skipped")
	}

	var doc domain.SystemCostDocument
	if ok, err := e.readOptional(artifact.SystemCosts, &doc); err != nil {
		return err
	} else if ok {
		reports = append(reports, validation.CostBenchmarks(doc))
	} else {
		log.Warn().Str("artifact", artifact.SystemCosts).Msg("not found, cost checks skipped")
	}

	var ts domain.Timeseries
	if ok, err := e.readOptional(artifact.UsefulTimeseries, &ts); err != nil {
		return err
	} else if ok {
		reports = append(reports, validation.UsefulBenchmarks(ts, validation.BenchmarkYear))
	} else {
		log.Warn().Str("artifact", artifact.UsefulTimeseries).Msg("not found, useful energy checks skipped")
	}

	overall := validation.NewReport("Overall")
	for _, r := range reports {
		validation.Print(e.Out, r)
		overall.Merge(r)
	}
	e.printf("OVERALL %s: %d reports, %s\n", status(overall.Valid), len(reports), overall.Summary)

	out := validationDoc{
		GeneratedAt: e.Writer.Stamp(),
		Valid:       overall.Valid,
		Summary:     overall.Summary,
		Reports:     reports,
	}
	if _, err := e.Writer.Write(artifact.ValidationReport, out); err != nil {
		return err
	}

	if !overall.Valid && e.NewAlerter != nil {
		if err := e.alert(ctx, reports); err != nil {
			log.Error().Err(err).Msg("validation alert failed")
		}
	}
	return nil
}

func (e *Env) alert(ctx context.Context, reports []*validation.Report) error {
	a, err := e.NewAlerter(ctx)
	if err != nil {
		return fmt.Errorf("failed to create alerter: %w", err)
	}
	return a.SendValidationAlert(ctx, reports)
}

func status(valid bool) string {
	if valid {
		return "PASSED"
	}
	return "FAILED"
}
