// Package artifact writes and reads the JSON documents produced by the pipeline jobs.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// Writer writes indented JSON artifacts into one directory.
type Writer struct {
	Dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, now: time.Now}
}

// Stamp is the generated_at value for artifacts written now.
func (w *Writer) Stamp() string {
	return w.now().UTC().Format(time.RFC3339)
}

// Path returns where name is written.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Write marshals v with two-space indentation to Dir/name and returns the path.
func (w *Writer) Write(name string, v any) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", w.Dir, err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", name, err)
	}
	path := w.Path(name)
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("bytes", len(b)).Msg("artifact written")
	return path, nil
}

// Read decodes the JSON file at path into v.
func Read(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// Artifact file names.
const (
	UsefulTimeseries   = "useful_energy_timeseries.json"
	RegionalTimeseries = "regional_energy_timeseries.json"
	FFGrowth           = "ff_growth_timeseries.json"
	RegionalNetImports = "regional_net_imports_timeseries.json"
	Projections        = "demand_growth_projections.json"
	Calibration        = "projection_calibration.json"
	SystemCosts        = "full_system_costs.json"
	LifetimeServices   = "lifetime_services_comparison.json"
	EnergyPotential    = "energy_potential_by_region.json"
	ValidationReport   = "validation_report.json"
	Workbook           = "energy_services.xlsx"
	HistoryChart       = "history.png"
)
