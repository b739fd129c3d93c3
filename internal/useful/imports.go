package useful

import (
	"sort"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/owid"
)

// TWhPerEJ is the divisor used for the trade balance series.
const TWhPerEJ = 277.778

// ImportFactors convert net fossil trade to useful energy.
var ImportFactors = map[string]float64{
	domain.Coal: 0.30,
	domain.Oil:  0.35,
	domain.Gas:  0.40,
}

// ImportCountries are the major importers, exporters and transitioning economies tracked.
var ImportCountries = []string{
	"Japan", "South Korea", "India", "China", "Germany", "France", "Italy", "Spain",
	"United Kingdom", "Turkey", "Poland", "Thailand", "Taiwan", "Netherlands", "Belgium",
	"Russia", "Saudi Arabia", "United States", "Canada", "Australia", "Norway", "Qatar",
	"Kuwait", "United Arab Emirates", "Iraq", "Iran",
	"Brazil", "Mexico", "Indonesia", "Malaysia", "South Africa",
}

// FuelBalance is a net import figure; negative values are net exports.
type FuelBalance struct {
	PrimaryEJ float64 `json:"primary_ej"`
	UsefulEJ  float64 `json:"useful_ej"`
}

type ImportYear struct {
	Year  int         `json:"year"`
	Coal  FuelBalance `json:"coal"`
	Oil   FuelBalance `json:"oil"`
	Gas   FuelBalance `json:"gas"`
	Total FuelBalance `json:"total"`
}

type ImportRegion struct {
	Region string       `json:"region"`
	Years  []ImportYear `json:"years"`
}

// NetImports computes consumption − production per fossil fuel for each tracked
// country, sorted by country name.
func NetImports(data owid.Dataset, startYear int) []ImportRegion {
	names := append([]string(nil), ImportCountries...)
	sort.Strings(names)

	var out []ImportRegion
	for _, name := range names {
		c, err := data.Country(name)
		if err != nil {
			continue
		}
		region := ImportRegion{Region: name}
		for _, row := range c.Data {
			year, ok := row.Year()
			if !ok || year < startYear {
				continue
			}
			region.Years = append(region.Years, importYear(year, row))
		}
		sort.Slice(region.Years, func(i, j int) bool { return region.Years[i].Year < region.Years[j].Year })
		if len(region.Years) > 0 {
			out = append(out, region)
		}
	}
	return out
}

func importYear(year int, row owid.Row) ImportYear {
	balance := func(fuel string) (float64, float64) {
		net := (row.Float(fuel+"_consumption") - row.Float(fuel+"_production")) / TWhPerEJ
		return net, net * ImportFactors[fuel]
	}
	coalP, coalU := balance(domain.Coal)
	oilP, oilU := balance(domain.Oil)
	gasP, gasU := balance(domain.Gas)

	return ImportYear{
		Year:  year,
		Coal:  FuelBalance{domain.Round(coalP, 4), domain.Round(coalU, 4)},
		Oil:   FuelBalance{domain.Round(oilP, 4), domain.Round(oilU, 4)},
		Gas:   FuelBalance{domain.Round(gasP, 4), domain.Round(gasU, 4)},
		Total: FuelBalance{domain.Round(coalP+oilP+gasP, 4), domain.Round(coalU+oilU+gasU, 4)},
	}
}
