// Package plants compares the lifetime energy services delivered by one typical plant
// of each generation technology against the fuel it consumes.
package plants

import (
	"sort"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

const (
	HoursPerYear = 8760
	GJPerMWh     = 3.6

	// Generation is reported in TWh and energy quantities are divided by 1e6.
	perMillion = 1_000_000
)

// Kind groups plants by fuel dependence.
type Kind string

const (
	Fossil    Kind = "fossil"
	LowCarbon Kind = "low_carbon"
	Renewable Kind = "renewable"
)

// Spec describes a typical plant.
type Spec struct {
	ID             string
	Name           string
	Kind           Kind
	CapacityMW     float64
	LifetimeYears  float64
	CapacityFactor float64
	Efficiency     float64
	FuelGJPerMWh   float64
	Notes          string
}

var Specs = []Spec{
	{"coal", "Coal Power Plant", Fossil, 600, 40, 0.70, 0.35, 10.29, "Requires continuous coal imports for fuel"},
	{"gas_combined_cycle", "Natural Gas Combined Cycle", Fossil, 600, 30, 0.60, 0.55, 6.55, "Requires continuous natural gas imports"},
	{"oil", "Oil Power Plant", Fossil, 300, 35, 0.45, 0.38, 9.47, "Requires continuous oil imports"},
	{"nuclear", "Nuclear Power Plant", LowCarbon, 1000, 60, 0.90, 0.33, 0.50, "Small uranium import requirement, mostly domestic value-add"},
	{"solar_pv", "Solar PV Farm", Renewable, 200, 30, 0.24, 0.90, 0, "Zero fuel imports - one-time capital investment"},
	{"wind_onshore", "Onshore Wind Farm", Renewable, 200, 25, 0.35, 0.90, 0, "Zero fuel imports - one-time capital investment"},
	{"wind_offshore", "Offshore Wind Farm", Renewable, 400, 25, 0.45, 0.90, 0, "Zero fuel imports - one-time capital investment"},
	{"hydro", "Hydropower Dam", Renewable, 500, 80, 0.50, 0.90, 0, "Zero fuel imports - extremely long lifetime"},
}

// Result is one plant's lifetime balance.
type Result struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Kind           Kind    `json:"type"`
	CapacityMW     float64 `json:"capacity_mw"`
	LifetimeYears  float64 `json:"lifetime_years"`
	CapacityFactor float64 `json:"capacity_factor"`
	Efficiency     float64 `json:"efficiency"`
	GenerationTWh  float64 `json:"lifetime_generation_twh"`
	UsefulEJ       float64 `json:"lifetime_useful_energy_ej"`
	FuelImportsEJ  float64 `json:"lifetime_fuel_imports_ej"`
	NetServicesEJ  float64 `json:"net_lifetime_services_ej"`
	ServicesPerMW  float64 `json:"services_per_mw"`
	Notes          string  `json:"notes"`
}

type Comparison struct {
	Metadata   domain.Metadata `json:"metadata"`
	PlantTypes []Result        `json:"plant_types"`
}

// Lifetime computes a plant's lifetime generation, useful energy, fuel use and net
// services.
func Lifetime(s Spec) Result {
	genMWh := s.CapacityMW * s.CapacityFactor * s.LifetimeYears * HoursPerYear
	useful := genMWh * GJPerMWh * s.Efficiency / perMillion
	fuel := genMWh * s.FuelGJPerMWh / perMillion
	net := useful - fuel

	var perMW float64
	if s.CapacityMW > 0 {
		perMW = net / s.CapacityMW
	}
	return Result{
		ID:             s.ID,
		Name:           s.Name,
		Kind:           s.Kind,
		CapacityMW:     s.CapacityMW,
		LifetimeYears:  s.LifetimeYears,
		CapacityFactor: s.CapacityFactor,
		Efficiency:     s.Efficiency,
		GenerationTWh:  domain.Round(genMWh/perMillion, 2),
		UsefulEJ:       domain.Round(useful, 4),
		FuelImportsEJ:  domain.Round(fuel, 4),
		NetServicesEJ:  domain.Round(net, 4),
		ServicesPerMW:  domain.Round(perMW, 6),
		Notes:          s.Notes,
	}
}

// Compare evaluates every plant, ordered from the most negative net services up.
func Compare(specs []Spec) Comparison {
	out := Comparison{
		Metadata: domain.Metadata{
			Title:       "Lifetime Energy Services Comparison by Power Plant Type",
			Description: "Compares lifetime electricity generation, useful energy services, fuel import requirements, and net energy services for different power plant technologies",
			Units: map[string]string{
				"generation":   "TWh (terawatt-hours)",
				"services":     "EJ (exajoules)",
				"fuel_imports": "EJ (exajoules)",
				"net_services": "EJ (exajoules)",
			},
			Methodology: "Generation = Capacity × Capacity Factor × Lifetime × 8760. Services account for efficiency losses. Fossil plants require continuous fuel imports; renewables have none.",
			Sources:     []string{"IRENA", "IEA", "industry data"},
		},
		PlantTypes: make([]Result, 0, len(specs)),
	}
	for _, s := range specs {
		out.PlantTypes = append(out.PlantTypes, Lifetime(s))
	}
	sort.SliceStable(out.PlantTypes, func(i, j int) bool {
		return out.PlantTypes[i].NetServicesEJ < out.PlantTypes[j].NetServicesEJ
	})
	return out
}
