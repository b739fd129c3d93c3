package useful

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/efficiency"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/owid"
)

// RegionSpec pairs a display label with its OWID country name.
type RegionSpec struct {
	Label   string
	Country string
}

// Regions are the continental, national and economic groupings compared on the front end.
var Regions = []RegionSpec{
	{"Africa", "Africa"},
	{"Asia", "Asia"},
	{"Europe", "Europe"},
	{"North America", "North America"},
	{"South America", "South America"},
	{"Oceania", "Oceania"},
	{"China", "China"},
	{"India", "India"},
	{"United States", "United States"},
	{"Japan", "Japan"},
	{"Germany", "Germany"},
	{"United Kingdom", "United Kingdom"},
	{"France", "France"},
	{"Brazil", "Brazil"},
	{"Canada", "Canada"},
	{"South Korea", "South Korea"},
	{"Russia", "Russia"},
	{"Indonesia", "Indonesia"},
	{"Mexico", "Mexico"},
	{"Saudi Arabia", "Saudi Arabia"},
	{"Australia", "Australia"},
	{"Spain", "Spain"},
	{"South Africa", "South Africa"},
	{"European Union", "European Union (27)"},
	{"OECD", "OECD (BP)"},
	{"Non-OECD", "Non-OECD (BP)"},
}

var regionalColumns = []struct {
	source string
	column string
}{
	{domain.Coal, "coal_consumption"},
	{domain.Oil, "oil_consumption"},
	{domain.Gas, "gas_consumption"},
	{domain.Nuclear, "nuclear_consumption"},
	{domain.Hydro, "hydro_consumption"},
	{domain.Wind, "wind_consumption"},
	{domain.Solar, "solar_consumption"},
	{domain.Biofuels, "biofuel_consumption"},
	{domain.OtherRenewables, "other_renewable_consumption"},
}

// RegionalSeries converts one country's consumption columns to useful energy.
// Consumption is reported in TWh and converted to EJ before the factors apply.
func RegionalSeries(c *owid.Country, tbl efficiency.Table, startYear int) []domain.YearRecord {
	var out []domain.YearRecord
	for _, row := range c.Data {
		year, ok := row.Year()
		if !ok || year < startYear {
			continue
		}
		rec := domain.YearRecord{Year: year, SourcesUsefulEJ: make(map[string]float64, len(regionalColumns))}

		var primary, total, fossil float64
		for _, col := range regionalColumns {
			ej := row.Float(col.column) * domain.TWhToEJ
			primary += ej
			u := domain.Round(tbl.Useful(col.source, ej), 4)
			rec.SourcesUsefulEJ[col.source] = u
			total += u
			if domain.IsFossil(col.source) {
				fossil += u
			}
		}
		if primary > 0 {
			rec.EfficiencyPercent = domain.Round(total/primary*100, 1)
		}
		finalize(&rec, total, fossil)
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Regional builds every configured region present in the dataset. Regions missing
// from the dataset are skipped with a warning.
func Regional(data owid.Dataset, tbl efficiency.Table, startYear int) map[string]domain.Region {
	out := make(map[string]domain.Region, len(Regions))
	for _, spec := range Regions {
		c, err := data.Country(spec.Country)
		if err != nil {
			log.Warn().Str("region", spec.Label).Msg("region missing from dataset")
			continue
		}
		out[spec.Label] = domain.Region{
			Name:    spec.Label,
			Country: spec.Country,
			Data:    RegionalSeries(c, tbl, startYear),
		}
	}
	return out
}
