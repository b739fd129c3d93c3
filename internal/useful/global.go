// Package useful converts OWID consumption and generation figures into useful energy.
package useful

import (
	"errors"
	"sort"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/efficiency"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/owid"
)

// TraditionalBiomassEJ is added to modern biofuels; OWID does not report traditional use.
const TraditionalBiomassEJ = 45.0

// ErrNoBaseline is returned when a series has no record for the requested base year.
var ErrNoBaseline = errors.New("no record for base year")

// globalColumns maps each source to the OWID column it is read from. Electricity
// sources use generation, not the substitution-inflated consumption columns.
var globalColumns = []struct {
	source string
	column string
}{
	{domain.Oil, "oil_consumption"},
	{domain.Gas, "gas_consumption"},
	{domain.Coal, "coal_consumption"},
	{domain.Nuclear, "nuclear_electricity"},
	{domain.Hydro, "hydro_electricity"},
	{domain.Wind, "wind_electricity"},
	{domain.Solar, "solar_electricity"},
	{domain.Geothermal, "other_renewable_exc_biofuel_electricity"},
}

// globalOrder fixes the summation order so repeated runs produce identical totals.
var globalOrder = []string{
	domain.Oil, domain.Gas, domain.Coal, domain.Nuclear, domain.Hydro,
	domain.Wind, domain.Solar, domain.Biomass, domain.Geothermal, domain.Other,
}

// FinalEnergy returns the final energy per source in EJ for one row.
func FinalEnergy(row owid.Row) map[string]float64 {
	out := make(map[string]float64, len(globalColumns)+2)
	for _, c := range globalColumns {
		out[c.source] = row.Float(c.column) * domain.TWhToEJ
	}
	out[domain.Biomass] = row.Float("biofuel_consumption")*domain.TWhToEJ + TraditionalBiomassEJ
	out[domain.Other] = 0
	return out
}

// Global builds the World useful-energy series from startYear on.
func Global(world *owid.Country, tbl efficiency.Table, startYear int) []domain.YearRecord {
	var out []domain.YearRecord
	for _, row := range world.Data {
		year, ok := row.Year()
		if !ok || year < startYear {
			continue
		}

		final := FinalEnergy(row)
		rec := domain.YearRecord{Year: year, SourcesUsefulEJ: make(map[string]float64, len(final))}

		var totalFinal, totalUseful, fossil float64
		for _, src := range globalOrder {
			v := final[src]
			totalFinal += v
			u := 0.0
			if v > 0 {
				u = domain.Round(tbl.Useful(src, v), 3)
			}
			rec.SourcesUsefulEJ[src] = u
			totalUseful += u
			if domain.IsFossil(src) {
				fossil += u
			}
		}

		rec.TotalFinalEJ = domain.Round(totalFinal, 2)
		if totalFinal > 0 {
			rec.OverallEfficiency = domain.Round(totalUseful/totalFinal*100, 1)
		}
		finalize(&rec, totalUseful, fossil)
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// finalize rounds totals so that fossil + clean equals total exactly, and derives shares.
func finalize(rec *domain.YearRecord, total, fossil float64) {
	rec.TotalUsefulEJ = domain.Round(total, 2)
	rec.FossilUsefulEJ = domain.Round(fossil, 2)
	rec.CleanUsefulEJ = domain.Round(rec.TotalUsefulEJ-rec.FossilUsefulEJ, 2)
	if total > 0 {
		rec.FossilSharePercent = domain.Round(fossil/total*100, 1)
		rec.CleanSharePercent = domain.Round(100-rec.FossilSharePercent, 1)
	}
}

// Baseline returns the record for year.
func Baseline(records []domain.YearRecord, year int) (domain.YearRecord, error) {
	for _, r := range records {
		if r.Year == year {
			return r, nil
		}
	}
	return domain.YearRecord{}, ErrNoBaseline
}
