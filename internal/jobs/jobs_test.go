package jobs

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/forecast"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/owid"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/potential"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/service"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/validation"
)

var csvColumns = []string{
	"country", "year",
	"oil_consumption", "gas_consumption", "coal_consumption",
	"nuclear_electricity", "hydro_electricity", "wind_electricity", "solar_electricity",
	"other_renewable_exc_biofuel_electricity", "biofuel_consumption",
	"nuclear_consumption", "hydro_consumption", "wind_consumption", "solar_consumption",
	"other_renewable_consumption",
	"oil_production", "gas_production", "coal_production",
}

// syntheticCSV has smoothly growing World, China and Japan rows for 2000-2024.
func syntheticCSV() string {
	var b strings.Builder
	b.WriteString(strings.Join(csvColumns, ",") + "\n")
	for _, c := range []struct {
		name  string
		scale float64
	}{{"World", 1}, {"China", 0.25}, {"Japan", 0.03}} {
		for i := 0; i <= 24; i++ {
			f := float64(i)
			vals := []float64{
				50000 + 300*f, 35000 + 500*f, 42000 + 200*f,
				2600 + 10*f, 4000 + 60*f, 100 * math.Pow(1.2, f), 10 * math.Pow(1.3, f),
				500 + 10*f, 1000 + 20*f,
				7000 + 20*f, 10000 + 150*f, 250 * math.Pow(1.2, f), 25 * math.Pow(1.3, f),
				1200 + 20*f,
				45000 + 300*f, 36000 + 500*f, 43000 + 200*f,
			}
			fmt.Fprintf(&b, "%s,%d", c.name, 2000+i)
			for _, v := range vals {
				fmt.Fprintf(&b, ",%.3f", v*c.scale)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

type fakeAlerter struct {
	reports []*validation.Report
}

func (f *fakeAlerter) SendValidationAlert(_ context.Context, reports []*validation.Report) error {
	f.reports = reports
	return nil
}

func newTestEnv(t *testing.T) (*Env, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	out := &bytes.Buffer{}
	e := &Env{
		Out:              out,
		Writer:           artifact.NewWriter(filepath.Join(root, "public")),
		DownloadDir:      filepath.Join(root, "downloads"),
		CacheDir:         filepath.Join(root, "cache"),
		CAGRFile:         "calculated_cagrs.json",
		EfficiencyMethod: "system_wide",
		ForecastMethod:   forecast.MethodSCurve,
		BaseYear:         2024,
		HistoryStartYear: 1965,
		CAGRStartYear:    2015,
		CAGREndYear:      2024,
		EndYear:          2050,
		SCCScenario:      "none",
		SmoothnessPct:    2.0,
		S3Prefix:         "artifacts",
	}
	return e, out
}

func writeDataset(t *testing.T, e *Env) {
	t.Helper()
	require.NoError(t, os.MkdirAll(e.DownloadDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(e.DownloadDir, owid.LatestCSV), []byte(syntheticCSV()), 0o644))
}

func TestAllWritesEveryArtifact(t *testing.T) {
	e, out := newTestEnv(t)
	writeDataset(t, e)

	require.NoError(t, All(context.Background(), e))

	for _, name := range []string{
		artifact.UsefulTimeseries, artifact.RegionalTimeseries, artifact.FFGrowth,
		"calculated_cagrs.json", artifact.Projections, "projections_scurve.png",
		artifact.SystemCosts, artifact.LifetimeServices, artifact.EnergyPotential, artifact.ValidationReport,
		artifact.Workbook, artifact.HistoryChart,
	} {
		assert.FileExists(t, e.Writer.Path(name))
	}

	var ts domain.Timeseries
	require.NoError(t, artifact.Read(e.Writer.Path(artifact.UsefulTimeseries), &ts))
	require.Len(t, ts.Data, 25)
	assert.Equal(t, "system_wide", ts.Metadata.EfficiencyMethod)
	for _, r := range ts.Data {
		assert.InDelta(t, r.TotalUsefulEJ, r.FossilUsefulEJ+r.CleanUsefulEJ, 1e-9, "year %d", r.Year)
	}

	var proj domain.Projections
	require.NoError(t, artifact.Read(e.Writer.Path(artifact.Projections), &proj))
	assert.Equal(t, "scurve", proj.Metadata.Method)
	assert.Equal(t, 2024, proj.Metadata.BaselineYear)
	require.Len(t, proj.Scenarios, 3)
	for _, s := range proj.Scenarios {
		require.Len(t, s.Data, 26)
		assert.Equal(t, 2025, s.Data[0].Year)
		assert.Equal(t, 2050, s.Data[25].Year)
	}

	var regional domain.RegionalTimeseries
	require.NoError(t, artifact.Read(e.Writer.Path(artifact.RegionalTimeseries), &regional))
	assert.Equal(t, []string{"China", "Japan"}, regional.Metadata.RegionsIncluded)

	text := out.String()
	assert.Contains(t, text, "== useful ==")
	assert.Contains(t, text, "== export ==")
	assert.Contains(t, text, "OVERALL")
	assert.Contains(t, text, "fossil peak")
}

func TestUsefulWithoutDataset(t *testing.T) {
	e, _ := newTestEnv(t)
	err := Useful(context.Background(), e)
	assert.ErrorContains(t, err, "run fetch first")
}

func TestNetImportsAndCalibrate(t *testing.T) {
	e, out := newTestEnv(t)
	writeDataset(t, e)
	ctx := context.Background()

	require.NoError(t, NetImports(ctx, e))
	var imports netImportsDoc
	require.NoError(t, artifact.Read(e.Writer.Path(artifact.RegionalNetImports), &imports))
	require.Len(t, imports.Regions, 2)
	assert.Equal(t, "China", imports.Regions[0].Region)
	// production exceeds consumption by a constant 1000 TWh of coal, scaled for China
	last := imports.Regions[0].Years[24]
	assert.Equal(t, 2024, last.Year)
	assert.InDelta(t, -250/277.778, last.Coal.PrimaryEJ, 1e-4)
	assert.InDelta(t, -250/277.778*0.30, last.Coal.UsefulEJ, 1e-4)

	// without the global series the calibration still runs, minus the fits
	require.NoError(t, Calibrate(ctx, e))
	var cal calibrationDoc
	require.NoError(t, artifact.Read(e.Writer.Path(artifact.Calibration), &cal))
	assert.Len(t, cal.Scenarios, 3)
	assert.Empty(t, cal.Logistic)
	assert.Contains(t, out.String(), "vs target")
}

func TestForecastUsesScenarioFile(t *testing.T) {
	e, _ := newTestEnv(t)
	writeDataset(t, e)
	ctx := context.Background()
	require.NoError(t, Useful(ctx, e))

	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`method: cagr
scenarios:
  - name: Flat
    description: Fossil flat after 2026
    end_year: 2030
    cagr:
      fossil_peak_year: 2026
      post_peak_rate: 0
`), 0o644))
	e.ScenariosFile = path

	// no rates file yet: they are recomputed from the series
	require.NoError(t, Forecast(ctx, e))

	var proj domain.Projections
	require.NoError(t, artifact.Read(e.Writer.Path(artifact.Projections), &proj))
	assert.Equal(t, "cagr", proj.Metadata.Method)
	require.Len(t, proj.Scenarios, 1)
	s := proj.Scenarios[0]
	require.Len(t, s.Data, 6)
	assert.InDelta(t, s.Data[1].FossilUsefulEJ, s.Data[5].FossilUsefulEJ, 0.011)
	assert.FileExists(t, e.Writer.Path("projections_cagr.png"))
}

func TestValidateAlertsOnlyWhenInvalid(t *testing.T) {
	e, out := newTestEnv(t)
	alerter := &fakeAlerter{}
	e.NewAlerter = func(context.Context) (Alerter, error) { return alerter, nil }
	ctx := context.Background()

	// nothing to check
	require.NoError(t, Validate(ctx, e))
	assert.Nil(t, alerter.reports)
	assert.Contains(t, out.String(), "OVERALL PASSED: 0 reports")

	// a series without the benchmark year fails the useful energy report
	_, err := e.Writer.Write(artifact.UsefulTimeseries, domain.Timeseries{Data: []domain.YearRecord{{Year: 2024}}})
	require.NoError(t, err)
	require.NoError(t, Validate(ctx, e))
	require.Len(t, alerter.reports, 1)
	assert.False(t, alerter.reports[0].Valid)

	var doc validationDoc
	require.NoError(t, artifact.Read(e.Writer.Path(artifact.ValidationReport), &doc))
	assert.False(t, doc.Valid)
	assert.Len(t, doc.Reports, 1)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(syntheticCSV()))
	}))
	defer srv.Close()

	e, out := newTestEnv(t)
	e.DatasetURL = srv.URL
	require.NoError(t, Fetch(context.Background(), e))

	assert.FileExists(t, filepath.Join(e.DownloadDir, owid.LatestJSON))
	assert.Contains(t, out.String(), "Countries: 3")
	assert.Contains(t, out.String(), "years 2000-2024")

	// the cached JSON is preferred over the CSV
	data, err := e.loadDataset()
	require.NoError(t, err)
	assert.Len(t, data, 3)
}

func TestPotential(t *testing.T) {
	e, out := newTestEnv(t)
	require.NoError(t, Potential(context.Background(), e))

	var doc potential.Comparison
	require.NoError(t, artifact.Read(e.Writer.Path(artifact.EnergyPotential), &doc))
	require.Len(t, doc.Regions, len(potential.Estimates))
	assert.Equal(t, "South Korea", doc.Regions[0].Region)
	assert.NotEmpty(t, doc.Metadata.GeneratedAt)
	assert.Equal(t, "EJ (exajoules)", doc.Metadata.Unit)

	assert.Contains(t, out.String(), "Regions: 21")
	assert.Contains(t, out.String(), "1322x")
}

func TestPublishNeedsATarget(t *testing.T) {
	e, _ := newTestEnv(t)
	err := Publish(context.Background(), e)
	assert.ErrorIs(t, err, service.ErrNothingToPublish)
}

func TestLookup(t *testing.T) {
	for _, name := range AllSteps {
		_, err := Lookup(name)
		assert.NoError(t, err, name)
	}
	_, err := Lookup("nope")
	assert.Error(t, err)
}
