package jobs

import (
	"context"
	"sort"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/efficiency"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/useful"
)

const (
	WorldCountry = "World"
	datasetName  = "Our World in Data - Energy Dataset"
)

// Useful builds the global useful-energy series.
func Useful(_ context.Context, e *Env) error {
	data, err := e.loadDataset()
	if err != nil {
		return err
	}
	world, err := data.Country(WorldCountry)
	if err != nil {
		return err
	}
	tbl, err := efficiency.Resolve(e.EfficiencyMethod, e.EfficiencyFile)
	if err != nil {
		return err
	}

	ts := domain.Timeseries{
		Metadata: domain.Metadata{
			GeneratedAt:       e.Writer.Stamp(),
			Description:       "Global useful energy services by source",
			Sources:           []string{datasetName},
			Unit:              "EJ",
			EfficiencyMethod:  tbl.Name,
			EfficiencyFactors: tbl.Factors,
			Version:           tbl.Version,
			Notes: []string{
				"Useful energy = final energy × efficiency factor",
				"Electricity generation (TWh) converted at 0.0036 EJ/TWh",
				"Biomass includes 45 EJ of traditional biomass",
			},
		},
		Data: useful.Global(world, tbl, e.HistoryStartYear),
	}
	if _, err := e.Writer.Write(artifact.UsefulTimeseries, ts); err != nil {
		return err
	}

	e.printf("Useful energy (%s factors), %d years\n", tbl.Name, len(ts.Data))
	if n := len(ts.Data); n > 0 {
		last := ts.Data[n-1]
		e.printf("  %d: total %.2f EJ, fossil %.2f EJ (%.1f%%), clean %.2f EJ (%.1f%%), efficiency %.1f%%\n",
			last.Year, last.TotalUsefulEJ, last.FossilUsefulEJ, last.FossilSharePercent,
			last.CleanUsefulEJ, last.CleanSharePercent, last.OverallEfficiency)
	}
	return nil
}

// Regional builds the per-region series with the regional factor table.
func Regional(_ context.Context, e *Env) error {
	data, err := e.loadDataset()
	if err != nil {
		return err
	}
	tbl, err := efficiency.Lookup(efficiency.Regional)
	if err != nil {
		return err
	}

	regions := useful.Regional(data, tbl, e.HistoryStartYear)
	labels := make([]string, 0, len(regions))
	for label := range regions {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	doc := domain.RegionalTimeseries{
		Metadata: domain.Metadata{
			GeneratedAt:       e.Writer.Stamp(),
			Description:       "Useful energy services by region",
			Sources:           []string{datasetName},
			Unit:              "EJ",
			EfficiencyMethod:  tbl.Name,
			EfficiencyFactors: tbl.Factors,
			RegionsIncluded:   labels,
		},
		Regions: regions,
	}
	if _, err := e.Writer.Write(artifact.RegionalTimeseries, doc); err != nil {
		return err
	}

	e.printf("Regional useful energy, %d regions\n", len(labels))
	for _, label := range labels {
		d := regions[label].Data
		if len(d) == 0 {
			continue
		}
		last := d[len(d)-1]
		e.printf("  %-16s %d: %8.2f EJ useful, %5.1f%% fossil\n", label, last.Year, last.TotalUsefulEJ, last.FossilSharePercent)
	}
	return nil
}

type ffGrowthDoc struct {
	Metadata domain.Metadata   `json:"metadata"`
	Data     []useful.FFGrowth `json:"data"`
}

// FFGrowth derives the fossil share of annual useful-energy growth from the global series.
func FFGrowth(_ context.Context, e *Env) error {
	var ts domain.Timeseries
	if err := e.read(artifact.UsefulTimeseries, &ts); err != nil {
		return err
	}
	doc := ffGrowthDoc{
		Metadata: domain.Metadata{
			GeneratedAt: e.Writer.Stamp(),
			Description: "Share of annual useful energy growth met by fossil fuels",
			Formula:     "ff_growth_pct = delta_fossil / delta_total × 100",
			Unit:        "%",
			Notes:       []string{"Five-year trailing average in ff_growth_5yr_avg"},
		},
		Data: useful.FossilGrowthShare(ts.Data),
	}
	if _, err := e.Writer.Write(artifact.FFGrowth, doc); err != nil {
		return err
	}
	e.printf("Fossil growth share, %d years\n", len(doc.Data))
	if n := len(doc.Data); n > 0 {
		last := doc.Data[n-1]
		e.printf("  %d: %.1f%% of growth from fossil, 5-year average %.1f%%\n", last.Year, last.FFGrowthPct, last.FFGrowth5yrAvg)
	}
	return nil
}

type netImportsDoc struct {
	Metadata domain.Metadata       `json:"metadata"`
	Regions  []useful.ImportRegion `json:"regions"`
}

// NetImports computes fossil net imports for the tracked countries.
func NetImports(_ context.Context, e *Env) error {
	data, err := e.loadDataset()
	if err != nil {
		return err
	}
	doc := netImportsDoc{
		Metadata: domain.Metadata{
			GeneratedAt:       e.Writer.Stamp(),
			Description:       "Fossil fuel net imports (consumption minus production)",
			Sources:           []string{datasetName},
			Unit:              "EJ",
			Formula:           "net_imports = consumption - production; positive values are imports",
			EfficiencyFactors: useful.ImportFactors,
		},
		Regions: useful.NetImports(data, e.HistoryStartYear),
	}
	if _, err := e.Writer.Write(artifact.RegionalNetImports, doc); err != nil {
		return err
	}
	e.printf("Net imports, %d countries\n", len(doc.Regions))
	for _, r := range doc.Regions {
		last := r.Years[len(r.Years)-1]
		e.printf("  %-16s %d: %8.4f EJ primary, %8.4f EJ useful\n", r.Region, last.Year, last.Total.PrimaryEJ, last.Total.UsefulEJ)
	}
	return nil
}
