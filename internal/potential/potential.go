// Package potential compares proven fossil reserves with technical renewable potential
// by region.
package potential

import (
	"sort"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

// Reserves are proven, economically recoverable fossil reserves in EJ.
type Reserves struct {
	Coal  float64 `json:"coal"`
	Oil   float64 `json:"oil"`
	Gas   float64 `json:"gas"`
	Total float64 `json:"total"`
}

// Renewables is technical renewable potential in EJ.
type Renewables struct {
	Solar      float64 `json:"solar"`
	Wind       float64 `json:"wind"`
	Hydro      float64 `json:"hydro"`
	Geothermal float64 `json:"geothermal,omitempty"`
	Total      float64 `json:"total"`
}

// Estimate is one region's table entry. Totals are filled in by Evaluate.
type Estimate struct {
	Region     string
	Reserves   Reserves
	Renewables Renewables
	Notes      string
}

// Estimates: BP Statistical Review (reserves), IRENA Global Atlas (renewables).
var Estimates = []Estimate{
	{"China", Reserves{Coal: 3627, Oil: 180, Gas: 320}, Renewables{Solar: 52000, Wind: 12000, Hydro: 2800}, "World's largest energy market transitioning to renewables"},
	{"United States", Reserves{Coal: 6500, Oil: 350, Gas: 530}, Renewables{Solar: 158000, Wind: 28000, Hydro: 400}, "Abundant resources in both fossil and renewable"},
	{"India", Reserves{Coal: 2600, Oil: 30, Gas: 50}, Renewables{Solar: 65000, Wind: 9000, Hydro: 660}, "Major importer with huge renewable potential"},
	{"Russia", Reserves{Coal: 4200, Oil: 690, Gas: 1490}, Renewables{Solar: 18000, Wind: 45000, Hydro: 1700}, "Major exporter with significant renewable potential"},
	{"Japan", Reserves{Coal: 8, Oil: 2, Gas: 1}, Renewables{Solar: 2800, Wind: 8400, Hydro: 120}, "Major importer with 1000x more renewable than fossil potential"},
	{"Germany", Reserves{Coal: 100, Oil: 1, Gas: 2}, Renewables{Solar: 1200, Wind: 3500, Hydro: 30}, "Leading Energiewende with 45x more renewable potential"},
	{"Saudi Arabia", Reserves{Coal: 0, Oil: 1800, Gas: 340}, Renewables{Solar: 125000, Wind: 6000, Hydro: 0}, "Oil giant with 60x solar potential vs oil reserves"},
	{"Brazil", Reserves{Coal: 15, Oil: 80, Gas: 18}, Renewables{Solar: 28000, Wind: 9000, Hydro: 1400}, "Renewable superpower with 340x potential vs fossil reserves"},
	{"Australia", Reserves{Coal: 3100, Oil: 25, Gas: 100}, Renewables{Solar: 95000, Wind: 15000, Hydro: 60}, "Coal exporter with 34x renewable potential"},
	{"South Korea", Reserves{Coal: 5, Oil: 0, Gas: 0}, Renewables{Solar: 1400, Wind: 5200, Hydro: 10}, "Major importer with 1300x more renewable potential"},
	{"United Kingdom", Reserves{Coal: 60, Oil: 14, Gas: 11}, Renewables{Solar: 180, Wind: 6800, Hydro: 8}, "Strong offshore wind with 82x renewable vs fossil potential"},
	{"France", Reserves{Coal: 4, Oil: 1, Gas: 1}, Renewables{Solar: 2400, Wind: 4200, Hydro: 140}, "Nuclear leader with 1100x renewable vs fossil potential"},
	{"Italy", Reserves{Coal: 1, Oil: 7, Gas: 3}, Renewables{Solar: 4500, Wind: 1800, Hydro: 110}, "Major importer with 580x renewable potential"},
	{"Spain", Reserves{Coal: 20, Oil: 1, Gas: 0}, Renewables{Solar: 8500, Wind: 3200, Hydro: 90}, "Renewable leader with 560x potential vs fossil reserves"},
	{"Canada", Reserves{Coal: 175, Oil: 1100, Gas: 75}, Renewables{Solar: 22000, Wind: 38000, Hydro: 1100}, "Resource-rich with 45x renewable vs fossil potential"},
	{"Indonesia", Reserves{Coal: 850, Oil: 20, Gas: 40}, Renewables{Solar: 12000, Wind: 3500, Hydro: 1100, Geothermal: 1400}, "Coal exporter with 20x renewable potential"},
	{"Mexico", Reserves{Coal: 30, Oil: 50, Gas: 11}, Renewables{Solar: 18000, Wind: 5500, Hydro: 180}, "Strong renewable potential (260x fossil reserves)"},
	{"Turkey", Reserves{Coal: 300, Oil: 2, Gas: 2}, Renewables{Solar: 8200, Wind: 4800, Hydro: 650}, "Major importer with 45x renewable vs fossil potential"},
	{"Poland", Reserves{Coal: 650, Oil: 1, Gas: 4}, Renewables{Solar: 1100, Wind: 4500, Hydro: 20}, "Coal-dependent with 9x renewable potential"},
	{"Thailand", Reserves{Coal: 30, Oil: 3, Gas: 11}, Renewables{Solar: 8500, Wind: 1800, Hydro: 160}, "Major importer with 240x renewable potential"},
	{"South Africa", Reserves{Coal: 260, Oil: 1, Gas: 1}, Renewables{Solar: 21000, Wind: 6800, Hydro: 60}, "Coal-dependent with 106x renewable potential"},
}

// Region is one entry of energy_potential_by_region.json. AdvantageRatio is renewable
// over fossil, 0 for a region without reserves.
type Region struct {
	Region             string     `json:"region"`
	FossilReserves     Reserves   `json:"fossil_reserves"`
	RenewablePotential Renewables `json:"renewable_potential"`
	AdvantageRatio     float64    `json:"renewable_advantage_ratio"`
	Notes              string     `json:"notes"`
}

type Comparison struct {
	Metadata domain.Metadata `json:"metadata"`
	Regions  []Region        `json:"regions"`
}

// Evaluate totals one estimate and computes its advantage ratio.
func Evaluate(e Estimate) Region {
	f := e.Reserves
	f.Total = f.Coal + f.Oil + f.Gas
	r := e.Renewables
	r.Total = r.Solar + r.Wind + r.Hydro + r.Geothermal

	out := Region{
		Region:             e.Region,
		FossilReserves:     f,
		RenewablePotential: r,
		Notes:              e.Notes,
	}
	if f.Total > 0 {
		out.AdvantageRatio = domain.Round(r.Total/f.Total, 1)
	}
	return out
}

// Compare evaluates every estimate, highest advantage first. Regions without fossil
// reserves have an unbounded advantage and lead the list.
func Compare(estimates []Estimate) Comparison {
	out := Comparison{
		Metadata: domain.Metadata{
			Title:       "Energy Potential by Region: Fossil Reserves vs Renewable Potential",
			Description: "Compares proven fossil fuel reserves against technical renewable energy potential for each region. Most regions have 10-1000x more renewable potential than fossil reserves.",
			Unit:        "EJ (exajoules)",
			Sources:     []string{"BP Statistical Review (fossil reserves)", "IRENA Global Atlas", "academic literature"},
			Methodology: "Fossil reserves = proven economically recoverable reserves. Renewable potential = technical potential based on land area, resource quality, and technology constraints (not theoretical maximum).",
			Notes:       []string{"Even major fossil exporters have significantly more renewable potential than reserves."},
		},
		Regions: make([]Region, 0, len(estimates)),
	}
	for _, e := range estimates {
		out.Regions = append(out.Regions, Evaluate(e))
	}
	sort.SliceStable(out.Regions, func(i, j int) bool {
		a, b := out.Regions[i], out.Regions[j]
		if noReserves(a) != noReserves(b) {
			return noReserves(a)
		}
		return a.AdvantageRatio > b.AdvantageRatio
	})
	return out
}

func noReserves(r Region) bool { return r.FossilReserves.Total <= 0 }
