package validation

import (
	"fmt"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/costs"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

type costRange struct {
	source string
	lo, hi float64
}

// lazardRanges are published 2024 base LCOE ranges in $/MWh.
var lazardRanges = []costRange{
	{domain.Solar, 20, 40},
	{domain.Wind, 25, 50},
	{domain.Coal, 60, 150},
	{domain.Gas, 40, 85},
	{domain.Nuclear, 130, 200},
}

func costYear(doc domain.SystemCostDocument, scenario, region string, year int) (domain.CostYear, bool) {
	sc, ok := doc.Scenarios[scenario]
	if !ok {
		return domain.CostYear{}, false
	}
	reg, ok := sc.Regions[region]
	if !ok {
		return domain.CostYear{}, false
	}
	for _, y := range reg.Timeseries {
		if y.Year == year {
			return y, true
		}
	}
	return domain.CostYear{}, false
}

func costPath(scenario, region string, year int, source, field string) string {
	return fmt.Sprintf("scenarios.%s.regions.%s[%d].sources.%s.%s", scenario, region, year, source, field)
}

// CostBenchmarks compares the Global cost series against industry benchmarks and the
// expected high-VRE behaviour in 2050 net zero.
func CostBenchmarks(doc domain.SystemCostDocument) *Report {
	r := NewReport("System cost benchmarks")
	const region = costs.GlobalRegion

	missing := func(scenario string, year int) {
		r.AddError(Result{
			Level:   LevelCosts,
			Message: fmt.Sprintf("no %s %s data for %d", scenario, region, year),
			Path:    fmt.Sprintf("scenarios.%s.regions.%s", scenario, region),
		})
	}

	// integration costs at 75-85% VRE
	if sc, ok := doc.Scenarios[costs.NZE]; ok {
		for _, y := range sc.Regions[region].Timeseries {
			if !within(y.VREPenetration, 0.75, 0.85) {
				continue
			}
			for _, src := range []string{domain.Solar, domain.Wind} {
				r.check(r.AddWarning, LevelCosts, costPath(costs.NZE, region, y.Year, src, "total_lcoes_mwh"),
					fmt.Sprintf("%s LCOES at %.0f%% VRE vs BNEF", src, y.VREPenetration*100),
					y.Sources[src].TotalLCOESMWh, 80, 120)
			}
		}
	}

	if y, ok := costYear(doc, costs.STEPS, region, costs.FirstYear); ok {
		heating := func(src string) float64 { return y.Sources[src].ServiceUnits[costs.HomeHeatingYear].Value }
		r.check(r.AddWarning, LevelCosts, costPath(costs.STEPS, region, y.Year, domain.Solar, "service_units.home_heating_year"),
			"solar home heating cost", heating(domain.Solar), 300, 800)
		r.check(r.AddWarning, LevelCosts, costPath(costs.STEPS, region, y.Year, domain.Gas, "service_units.home_heating_year"),
			"gas home heating cost", heating(domain.Gas), 800, 1500)

		for _, lr := range lazardRanges {
			r.check(r.AddWarning, LevelCosts, costPath(costs.STEPS, region, y.Year, lr.source, "base_lcoe_mwh"),
				lr.source+" base LCOE vs Lazard", y.Sources[lr.source].BaseLCOEMWh, lr.lo, lr.hi)
		}

		km := func(src string) float64 { return y.Sources[src].ServiceUnits[costs.VehicleKm].Value }
		r.check(r.AddWarning, LevelCosts, costPath(costs.STEPS, region, y.Year, domain.Solar, "service_units.vehicle_km"),
			"solar EV cost per km", km(domain.Solar), 0.01, 0.08)
		r.check(r.AddWarning, LevelCosts, costPath(costs.STEPS, region, y.Year, domain.Oil, "service_units.vehicle_km"),
			"oil cost per km", km(domain.Oil), 0.08, 0.25)
	} else {
		missing(costs.STEPS, costs.FirstYear)
	}

	y, ok := costYear(doc, costs.NZE, region, costs.LastYear)
	if !ok {
		missing(costs.NZE, costs.LastYear)
		return r
	}
	path := func(src, field string) string { return costPath(costs.NZE, region, y.Year, src, field) }
	solar, wind := y.Sources[domain.Solar], y.Sources[domain.Wind]
	gas, nuclear := y.Sources[domain.Gas], y.Sources[domain.Nuclear]

	r.check(r.AddError, LevelCosts, path(domain.Solar, "total_lcoes_mwh"), "solar 2050 NZE LCOES", solar.TotalLCOESMWh, 125, 145)
	r.check(r.AddError, LevelCosts, path(domain.Wind, "total_lcoes_mwh"), "wind 2050 NZE LCOES", wind.TotalLCOESMWh, 115, 135)
	r.check(r.AddError, LevelCosts, path(domain.Gas, "total_lcoes_mwh"), "gas 2050 NZE LCOES as peaker", gas.TotalLCOESMWh, 250, 320)

	nres := Result{Level: LevelCosts, Path: path(domain.Nuclear, "total_system_cost_mwh"), ActualValue: nuclear.TotalSystemCostMWh, Expected: "< 0"}
	if nuclear.TotalSystemCostMWh < 0 {
		nres.Message = "nuclear provides a grid stability credit at high VRE"
		r.AddInfo(nres)
	} else {
		nres.Message = "nuclear system cost should be negative at high VRE"
		r.AddError(nres)
	}
	r.check(r.AddWarning, LevelCosts, path(domain.Nuclear, "total_lcoes_mwh"), "nuclear 2050 NZE LCOES", nuclear.TotalLCOESMWh, 85, 105)
	r.check(r.AddError, LevelCosts, path(domain.Solar, "rebound_multiplier"), "2050 NZE rebound multiplier", solar.ReboundMultiplier, 1.04, 1.06)

	if avail, ok := doc.Metadata.Extra["scc_scenarios_available"]; ok {
		r.AddInfo(Result{Level: LevelCosts, Message: "social cost of carbon scenarios available", Path: "metadata.extra.scc_scenarios_available", ActualValue: avail})
	} else {
		r.AddWarning(Result{Level: LevelCosts, Message: "social cost of carbon scenarios not listed", Path: "metadata.extra.scc_scenarios_available"})
	}
	return r
}
