// Package efficiency holds the primary/final → useful energy conversion tables.
//
// Several calibrations have been used over the life of the project. They are kept as
// named tables; jobs pick one through configuration instead of hard-coding it.
package efficiency

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

// DefaultFactor applies to sources a table does not list.
const DefaultFactor = 0.35

const (
	SystemWide       = "system_wide"
	ElectricityChain = "electricity_chain"
	Calibrated       = "calibrated"
	Regional         = "regional"
)

// Table maps a source key to its conversion ratio.
type Table struct {
	Name        string             `json:"name"`
	Version     string             `json:"version"`
	Description string             `json:"description"`
	Factors     map[string]float64 `json:"factors"`
}

// Factor returns the ratio for source, falling back to DefaultFactor.
func (t Table) Factor(source string) float64 {
	if f, ok := t.Factors[source]; ok {
		return f
	}
	return DefaultFactor
}

// Useful converts a final/primary value to useful energy.
func (t Table) Useful(source string, final float64) float64 {
	return final * t.Factor(source)
}

// Validate checks every factor lies in [0,1].
func (t Table) Validate() error {
	keys := make([]string, 0, len(t.Factors))
	for k := range t.Factors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f := t.Factors[k]
		if f < 0 || f > 1 {
			return fmt.Errorf("efficiency factor %s=%g in table %s is outside [0,1]", k, f, t.Name)
		}
	}
	return nil
}

// electricity delivered to end use: T&D 92% × end-use 85%
const deliveredElectricity = 0.92 * 0.85

var tables = map[string]Table{
	SystemWide: {
		Name:        SystemWide,
		Version:     "1.6",
		Description: "System-wide primary to useful factors, thermal accounting for nuclear",
		Factors: map[string]float64{
			domain.Oil:        0.30,
			domain.Gas:        0.50,
			domain.Coal:       0.32,
			domain.Nuclear:    0.25,
			domain.Hydro:      0.85,
			domain.Wind:       0.75,
			domain.Solar:      0.75,
			domain.Biomass:    0.28,
			domain.Geothermal: 0.75,
		},
	},
	ElectricityChain: {
		Name:        ElectricityChain,
		Version:     "2023-corrected",
		Description: "Fossil end-use efficiencies; electricity sources through T&D and end-use losses",
		Factors: map[string]float64{
			domain.Oil:        0.25,
			domain.Gas:        0.35,
			domain.Coal:       0.30,
			domain.Nuclear:    deliveredElectricity,
			domain.Hydro:      deliveredElectricity,
			domain.Wind:       deliveredElectricity,
			domain.Solar:      deliveredElectricity,
			domain.Geothermal: deliveredElectricity,
			domain.Biomass:    0.22,
		},
	},
	Calibrated: {
		Name:        Calibrated,
		Version:     "calibrated-240",
		Description: "Differentiated fossil factors calibrated to a 240 EJ useful total",
		Factors: map[string]float64{
			domain.Oil:        0.30,
			domain.Gas:        0.50,
			domain.Coal:       0.32,
			domain.Nuclear:    0.90,
			domain.Hydro:      0.90,
			domain.Wind:       0.90,
			domain.Solar:      0.90,
			domain.Geothermal: 0.90,
			domain.Biomass:    0.28,
		},
	},
	Regional: {
		Name:        Regional,
		Version:     "regional",
		Description: "Factors applied to OWID consumption columns for regional comparisons",
		Factors: map[string]float64{
			domain.Coal:            0.32,
			domain.Oil:             0.30,
			domain.Gas:             0.50,
			domain.Nuclear:         0.90,
			domain.Hydro:           0.90,
			domain.Wind:            0.90,
			domain.Solar:           0.90,
			domain.Biofuels:        0.28,
			domain.OtherRenewables: 0.90,
		},
	},
}

// Names lists the built-in tables.
func Names() []string {
	out := make([]string, 0, len(tables))
	for k := range tables {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup returns a copy of a built-in table.
func Lookup(name string) (Table, error) {
	t, ok := tables[name]
	if !ok {
		return Table{}, fmt.Errorf("unknown efficiency table %q (have %v)", name, Names())
	}
	factors := make(map[string]float64, len(t.Factors))
	for k, v := range t.Factors {
		factors[k] = v
	}
	t.Factors = factors
	return t, nil
}

type factorFile struct {
	SystemWide map[string]float64 `json:"system_wide_efficiency"`
}

// LoadFile reads a factor file of the form {"system_wide_efficiency": {...}}.
func LoadFile(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read efficiency factors %s: %w", path, err)
	}
	var ff factorFile
	if err := json.Unmarshal(b, &ff); err != nil {
		return Table{}, fmt.Errorf("failed to decode efficiency factors %s: %w", path, err)
	}
	if len(ff.SystemWide) == 0 {
		return Table{}, fmt.Errorf("efficiency factors %s: system_wide_efficiency is empty", path)
	}
	t := Table{Name: "file", Version: path, Description: "Loaded from " + path, Factors: ff.SystemWide}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Resolve returns the file table when path is set, otherwise the named table.
func Resolve(name, path string) (Table, error) {
	if path != "" {
		return LoadFile(path)
	}
	return Lookup(name)
}
