package jobs

import (
	"context"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/costs"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/plants"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/potential"
)

const potentialTop = 10

var costSummaryYears = []int{costs.FirstYear, 2030, costs.LastYear}

// Costs generates the full system cost document for the configured SCC scenario.
func Costs(_ context.Context, e *Env) error {
	doc, err := costs.Generate(e.SCCScenario)
	if err != nil {
		return err
	}
	doc.Metadata.GeneratedAt = e.Writer.Stamp()
	if _, err := e.Writer.Write(artifact.SystemCosts, doc); err != nil {
		return err
	}

	e.printf("Full system LCOES, %s, SCC %s ($/MWh)\n", costs.GlobalRegion, e.SCCScenario)
	for _, sc := range costs.Scenarios {
		region := doc.Scenarios[sc].Regions[costs.GlobalRegion]
		e.printf("%s\n", sc)
		for _, cy := range region.Timeseries {
			if !containsYear(costSummaryYears, cy.Year) {
				continue
			}
			e.printf("  %d (VRE %.0f%%):", cy.Year, cy.VREPenetration*100)
			for _, src := range costs.Sources {
				e.printf(" %s %.0f", src, cy.Sources[src].TotalLCOESMWh)
			}
			e.printf("\n")
		}
	}
	return nil
}

// Lifetime compares lifetime energy services across plant types.
func Lifetime(_ context.Context, e *Env) error {
	cmp := plants.Compare(plants.Specs)
	cmp.Metadata.GeneratedAt = e.Writer.Stamp()
	if _, err := e.Writer.Write(artifact.LifetimeServices, cmp); err != nil {
		return err
	}

	e.printf("%-28s %12s %12s %12s %12s\n", "Plant", "Gen (TWh)", "Useful (EJ)", "Fuel (EJ)", "Net (EJ)")
	for _, r := range cmp.PlantTypes {
		e.printf("%-28s %12.2f %12.4f %12.4f %12.4f\n", r.Name, r.GenerationTWh, r.UsefulEJ, r.FuelImportsEJ, r.NetServicesEJ)
	}
	return nil
}

// Potential compares fossil reserves with renewable potential by region.
func Potential(_ context.Context, e *Env) error {
	cmp := potential.Compare(potential.Estimates)
	cmp.Metadata.GeneratedAt = e.Writer.Stamp()
	if _, err := e.Writer.Write(artifact.EnergyPotential, cmp); err != nil {
		return err
	}

	e.printf("Regions: %d\n", len(cmp.Regions))
	e.printf("%-20s %15s %15s %10s\n", "Region", "Fossil (EJ)", "Renewable (EJ)", "Advantage")
	for i, r := range cmp.Regions {
		if i == potentialTop {
			break
		}
		e.printf("%-20s %15.0f %15.0f %9.0fx\n", r.Region, r.FossilReserves.Total, r.RenewablePotential.Total, r.AdvantageRatio)
	}
	return nil
}

func containsYear(years []int, y int) bool {
	for _, v := range years {
		if v == y {
			return true
		}
	}
	return false
}
