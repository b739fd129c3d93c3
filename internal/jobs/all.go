package jobs

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Job is one pipeline step.
type Job struct {
	Name  string
	Short string
	Run   func(ctx context.Context, e *Env) error
}

// Jobs lists every step in the order All runs the local ones.
var Jobs = []Job{
	{"useful", "Global useful energy time series", Useful},
	{"regional", "Regional useful energy comparison", Regional},
	{"ffgrowth", "Fossil share of useful energy growth", FFGrowth},
	{"netimports", "Fossil fuel net imports by country", NetImports},
	{"cagr", "Historical compound growth rates", CAGR},
	{"forecast", "Scenario demand projections to 2050", Forecast},
	{"calibrate", "Displacement calibration and logistic fits", Calibrate},
	{"costs", "Full system costs of energy services", Costs},
	{"lifetime", "Lifetime energy services by plant type", Lifetime},
	{"potential", "Fossil reserves vs renewable potential by region", Potential},
	{"validate", "Validate generated artifacts", Validate},
	{"export", "Excel workbook and charts", Export},
	{"fetch", "Download the OWID energy dataset", Fetch},
	{"publish", "Upload artifacts and load series into Postgres", Publish},
}

// AllSteps are the jobs All runs. Fetch and publish touch the network and run only
// when asked for.
var AllSteps = []string{"useful", "regional", "ffgrowth", "cagr", "forecast", "costs", "lifetime", "potential", "validate", "export"}

// Lookup returns the job called name.
func Lookup(name string) (Job, error) {
	for _, j := range Jobs {
		if j.Name == name {
			return j, nil
		}
	}
	return Job{}, fmt.Errorf("unknown job %q", name)
}

// All runs AllSteps in order and stops at the first failure.
func All(ctx context.Context, e *Env) error {
	for _, name := range AllSteps {
		j, err := Lookup(name)
		if err != nil {
			return err
		}
		log.Info().Str("job", name).Msg("running")
		e.printf("\n== %s ==\n", name)
		if err := j.Run(ctx, e); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
