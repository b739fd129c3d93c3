// Package costs computes full-system levelized costs (LCOE plus grid integration) by
// source, scenario, region and year, and converts them into costs per unit of service.
package costs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

var (
	ErrUnknownSource   = errors.New("unknown cost source")
	ErrUnknownScenario = errors.New("unknown cost scenario")
	ErrUnknownSCC      = errors.New("unknown social cost of carbon scenario")
)

const (
	FirstYear = 2024
	LastYear  = 2050
)

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func sortedYears[V any](m map[int]V) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// interpolate is linear between table years and clamped outside them.
func interpolate(year int, points map[int]float64) float64 {
	years := sortedYears(points)
	if year <= years[0] {
		return points[years[0]]
	}
	if year >= years[len(years)-1] {
		return points[years[len(years)-1]]
	}
	for i := 0; i < len(years)-1; i++ {
		y1, y2 := years[i], years[i+1]
		if year >= y1 && year <= y2 {
			t := float64(year-y1) / float64(y2-y1)
			return points[y1] + (points[y2]-points[y1])*t
		}
	}
	return points[years[0]]
}

// BaseLCOE interpolates every field of a source's LCOE range for year.
func BaseLCOE(source string, year int) (LCOE, error) {
	if _, ok := baseLCOE[FirstYear][source]; !ok {
		return LCOE{}, fmt.Errorf("%w %q", ErrUnknownSource, source)
	}
	field := func(get func(LCOE) float64) float64 {
		pts := make(map[int]float64, len(baseLCOE))
		for y, tbl := range baseLCOE {
			pts[y] = get(tbl[source])
		}
		return interpolate(year, pts)
	}
	return LCOE{
		Min:            field(func(l LCOE) float64 { return l.Min }),
		Mid:            field(func(l LCOE) float64 { return l.Mid }),
		Max:            field(func(l LCOE) float64 { return l.Max }),
		CapacityFactor: field(func(l LCOE) float64 { return l.CapacityFactor }),
	}, nil
}

// VREPenetration returns the scenario's variable renewable share in year.
func VREPenetration(scenario string, year int) (float64, error) {
	pts, ok := vreScenarios[scenario]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownScenario, scenario)
	}
	return interpolate(year, pts), nil
}

// Rebound returns the scenario's induced-demand multiplier in year.
func Rebound(scenario string, year int) (float64, error) {
	pts, ok := reboundMultipliers[scenario]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownScenario, scenario)
	}
	return interpolate(year, pts), nil
}

// SystemCosts returns the integration costs of a source at a VRE penetration. Variable
// renewables pay more as penetration rises, gas pays for running as a peaker, and
// nuclear turns into a credit on high-VRE grids.
func SystemCosts(source string, vre float64) domain.SystemCosts {
	band := 3
	switch {
	case vre < 0.30:
		band = 0
	case vre < 0.60:
		band = 1
	case vre < 0.80:
		band = 2
	}

	switch source {
	case domain.Solar, domain.Wind, domain.OtherRenewables:
		return [...]domain.SystemCosts{
			{Firming: 10, Storage: 15, Grid: 20, Capacity: 15},
			{Firming: 30, Storage: 25, Grid: 25, Capacity: 15},
			{Firming: 50, Storage: 35, Grid: 25, Capacity: 10},
			{Firming: 65, Storage: 45, Grid: 25, Capacity: 10},
		}[band]
	case domain.Nuclear:
		return [...]domain.SystemCosts{
			{Grid: 15, Capacity: 5},
			{Grid: 10, Capacity: 0},
			{Grid: -10, Capacity: -20},
			{Grid: -15, Capacity: -25},
		}[band]
	case domain.Hydro, domain.Biofuels:
		return domain.SystemCosts{Grid: 25, Capacity: 10}
	case domain.Gas:
		return [...]domain.SystemCosts{
			{Grid: 20, Capacity: 15},
			{Grid: 35, Capacity: 45},
			{Grid: 50, Capacity: 100},
			{Grid: 60, Capacity: 160},
		}[band]
	}
	return domain.SystemCosts{Grid: 20, Capacity: 15}
}

// Entry computes the full cost breakdown for one source, year, scenario and region.
func Entry(source string, year int, scenario, region, scc string) (domain.CostEntry, error) {
	lcoe, err := BaseLCOE(source, year)
	if err != nil {
		return domain.CostEntry{}, err
	}
	vre, err := VREPenetration(scenario, year)
	if err != nil {
		return domain.CostEntry{}, err
	}
	rebound, err := Rebound(scenario, year)
	if err != nil {
		return domain.CostEntry{}, err
	}
	carbon, ok := SCCScenarios[scc]
	if !ok {
		return domain.CostEntry{}, fmt.Errorf("%w %q", ErrUnknownSCC, scc)
	}

	system := SystemCosts(source, vre)
	systemTotal := system.Total()
	sccCost := carbon.Value * CarbonIntensity[source]
	total := (lcoe.Mid + systemTotal + sccCost) * Multiplier(region)

	units := make(map[string]domain.ServiceCost, len(ServiceConversions))
	for _, c := range ServiceConversions {
		mwh := c.MWhPerUnit * rebound
		units[c.Key] = domain.ServiceCost{
			Value:       round(total*mwh, 2),
			Label:       c.Label,
			Description: c.Description,
			MWhPerUnit:  round(mwh, 4),
		}
	}

	return domain.CostEntry{
		BaseLCOEMWh: round(lcoe.Mid, 2),
		SystemCosts: domain.SystemCosts{
			Firming:  round(system.Firming, 2),
			Storage:  round(system.Storage, 2),
			Grid:     round(system.Grid, 2),
			Capacity: round(system.Capacity, 2),
		},
		TotalSystemCostMWh: round(systemTotal, 2),
		SCCCostMWh:         round(sccCost, 2),
		TotalLCOESMWh:      round(total, 2),
		CapacityFactor:     round(lcoe.CapacityFactor, 3),
		CarbonIntensity:    CarbonIntensity[source],
		ReboundMultiplier:  round(rebound, 3),
		ServiceUnits:       units,
	}, nil
}

// Generate builds the full cost document for every scenario, region, year and source.
func Generate(scc string) (domain.SystemCostDocument, error) {
	if _, ok := SCCScenarios[scc]; !ok {
		return domain.SystemCostDocument{}, fmt.Errorf("%w %q", ErrUnknownSCC, scc)
	}

	doc := domain.SystemCostDocument{
		Metadata:  metadata(scc),
		Scenarios: make(map[string]domain.CostScenario, len(Scenarios)),
	}
	for _, sc := range Scenarios {
		cs := domain.CostScenario{
			Name:        sc,
			Description: scenarioDescriptions[sc],
			Regions:     make(map[string]domain.CostRegion, len(Regions)),
		}
		for _, r := range Regions {
			cr := domain.CostRegion{RegionalMultiplier: r.Multiplier}
			for year := FirstYear; year <= LastYear; year++ {
				vre, err := VREPenetration(sc, year)
				if err != nil {
					return domain.SystemCostDocument{}, err
				}
				cy := domain.CostYear{
					Year:           year,
					VREPenetration: round(vre, 3),
					Sources:        make(map[string]domain.CostEntry, len(Sources)),
				}
				for _, src := range Sources {
					e, err := Entry(src, year, sc, r.Region, scc)
					if err != nil {
						return domain.SystemCostDocument{}, err
					}
					cy.Sources[src] = e
				}
				cr.Timeseries = append(cr.Timeseries, cy)
			}
			cs.Regions[r.Region] = cr
		}
		doc.Scenarios[sc] = cs
	}
	return doc, nil
}

func metadata(scc string) domain.Metadata {
	regions := make([]string, len(Regions))
	for i, r := range Regions {
		regions[i] = r.Region
	}
	return domain.Metadata{
		Title:       "Full system costs of energy services",
		Version:     "2.0",
		Methodology: "System LCOES with full integration costs",
		Sources: []string{
			"Lazard LCOE Analysis 2025",
			"IRENA Renewable Cost Database 2025",
			"BNEF New Energy Outlook 2025",
			"IEA World Energy Outlook 2024",
			"IEA Grid Integration Study 2024",
			"NREL Storage Futures Study 2024",
			"RMI Economics of Clean Energy 2024",
			"EPA Social Cost of Carbon 2024",
			"IPCC Lifecycle Emissions 2024",
		},
		Units: map[string]string{
			"lcoe":             "$/MWh",
			"carbon_intensity": "tCO2/MWh",
			"vre_penetration":  "share of electricity",
		},
		Notes: []string{
			"System costs include firming, storage, grid, and capacity adequacy",
			"Higher VRE penetration raises integration costs for renewables and capacity costs for gas",
			"Nuclear carries a negative system cost on high-VRE grids",
			"Regional multipliers account for local cost variations (0.70x to 1.40x)",
			"Service unit conversions include the rebound effect",
		},
		RegionsIncluded: regions,
		Extra: map[string]any{
			"scc_scenario":            scc,
			"scc_scenarios_available": SCCKeys,
		},
	}
}
