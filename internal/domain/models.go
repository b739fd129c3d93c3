package domain

import "math"

// Source keys used by the global series and the forecasts.
const (
	Coal       = "coal"
	Oil        = "oil"
	Gas        = "gas"
	Nuclear    = "nuclear"
	Hydro      = "hydro"
	Wind       = "wind"
	Solar      = "solar"
	Biomass    = "biomass"
	Geothermal = "geothermal"
	Other      = "other"

	// OWID column stems used by the regional tables and the cost model.
	Biofuels        = "biofuels"
	OtherRenewables = "other_renewables"
)

// TWhToEJ converts terawatt-hours to exajoules.
const TWhToEJ = 0.0036

var (
	FossilSources = []string{Coal, Oil, Gas}
	CleanSources  = []string{Nuclear, Hydro, Wind, Solar, Geothermal, Biomass}
)

// IsFossil reports whether a source key counts towards the fossil subtotal.
func IsFossil(source string) bool {
	for _, s := range FossilSources {
		if s == source {
			return true
		}
	}
	return false
}

// YearRecord is one year of a useful-energy series, global or regional.
type YearRecord struct {
	Year               int                `db:"year" json:"year"`
	TotalFinalEJ       float64            `db:"total_final_ej" json:"total_final_ej,omitempty"`
	TotalUsefulEJ      float64            `db:"total_useful_ej" json:"total_useful_ej"`
	OverallEfficiency  float64            `db:"-" json:"overall_efficiency,omitempty"`
	EfficiencyPercent  float64            `db:"-" json:"efficiency_percent,omitempty"`
	SourcesUsefulEJ    map[string]float64 `db:"-" json:"sources_useful_ej"`
	FossilUsefulEJ     float64            `db:"fossil_useful_ej" json:"fossil_useful_ej"`
	CleanUsefulEJ      float64            `db:"clean_useful_ej" json:"clean_useful_ej"`
	FossilSharePercent float64            `db:"fossil_share_percent" json:"fossil_share_percent"`
	CleanSharePercent  float64            `db:"clean_share_percent" json:"clean_share_percent"`
}

// Metadata heads every generated artifact.
type Metadata struct {
	GeneratedAt       string             `json:"generated_at,omitempty"`
	Title             string             `json:"title,omitempty"`
	Description       string             `json:"description,omitempty"`
	Model             string             `json:"model,omitempty"`
	Version           string             `json:"version,omitempty"`
	Methodology       string             `json:"methodology,omitempty"`
	Sources           []string           `json:"sources,omitempty"`
	Unit              string             `json:"unit,omitempty"`
	Units             map[string]string  `json:"units,omitempty"`
	Notes             []string           `json:"notes,omitempty"`
	Formula           string             `json:"formula,omitempty"`
	EfficiencyMethod  string             `json:"efficiency_method,omitempty"`
	EfficiencyFactors map[string]float64 `json:"efficiency_factors,omitempty"`
	RegionsIncluded   []string           `json:"regions_included,omitempty"`
	BaselineYear      int                `json:"baseline_year,omitempty"`
	Baseline          string             `json:"baseline,omitempty"`
	ProjectionYears   string             `json:"projection_years,omitempty"`
	Method            string             `json:"method,omitempty"`
	Extra             map[string]any     `json:"extra,omitempty"`
}

// Timeseries is the useful_energy_timeseries.json document.
type Timeseries struct {
	Metadata Metadata     `json:"metadata"`
	Data     []YearRecord `json:"data"`
}

// Record returns the record for year, or false.
func (t *Timeseries) Record(year int) (YearRecord, bool) {
	for _, r := range t.Data {
		if r.Year == year {
			return r, true
		}
	}
	return YearRecord{}, false
}

// Region is a labelled regional series.
type Region struct {
	Name    string       `json:"-"`
	Country string       `json:"owid_country"`
	Data    []YearRecord `json:"data"`
}

type RegionalTimeseries struct {
	Metadata Metadata          `json:"metadata"`
	Regions  map[string]Region `json:"regions"`
}

// Projection is one forecast year of a scenario.
type Projection struct {
	Year               int                `db:"year" json:"year"`
	Scenario           string             `db:"scenario" json:"scenario"`
	TotalUsefulEJ      float64            `db:"total_useful_ej" json:"total_useful_ej"`
	FossilUsefulEJ     float64            `db:"fossil_useful_ej" json:"fossil_useful_ej"`
	CleanUsefulEJ      float64            `db:"clean_useful_ej" json:"clean_useful_ej"`
	FossilSharePercent float64            `db:"fossil_share_percent" json:"fossil_share_percent"`
	CleanSharePercent  float64            `db:"clean_share_percent" json:"clean_share_percent"`
	SourcesUsefulEJ    map[string]float64 `db:"-" json:"sources_useful_ej"`
}

// Scenario is a named policy trajectory.
type Scenario struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Method      string       `json:"method"`
	Parameters  any          `json:"parameters,omitempty"`
	Data        []Projection `json:"data"`
}

// Projection returns the projection for year, or false.
func (s *Scenario) Projection(year int) (Projection, bool) {
	for _, p := range s.Data {
		if p.Year == year {
			return p, true
		}
	}
	return Projection{}, false
}

type Projections struct {
	Metadata  Metadata   `json:"metadata"`
	Scenarios []Scenario `json:"scenarios"`
}

// SystemCosts are the grid-integration components in $/MWh.
type SystemCosts struct {
	Firming  float64 `json:"firming"`
	Storage  float64 `json:"storage"`
	Grid     float64 `json:"grid"`
	Capacity float64 `json:"capacity"`
}

func (s SystemCosts) Total() float64 {
	return s.Firming + s.Storage + s.Grid + s.Capacity
}

// ServiceCost is the cost of one unit of physical service.
type ServiceCost struct {
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	MWhPerUnit  float64 `json:"mwh_per_unit"`
}

// CostEntry is the cost of one (source, year, scenario, region) tuple.
type CostEntry struct {
	BaseLCOEMWh        float64                `json:"base_lcoe_mwh"`
	SystemCosts        SystemCosts            `json:"system_costs"`
	TotalSystemCostMWh float64                `json:"total_system_cost_mwh"`
	SCCCostMWh         float64                `json:"scc_cost_mwh"`
	TotalLCOESMWh      float64                `json:"total_lcoes_mwh"`
	CapacityFactor     float64                `json:"capacity_factor"`
	CarbonIntensity    float64                `json:"carbon_intensity_tco2_mwh"`
	ReboundMultiplier  float64                `json:"rebound_multiplier"`
	ServiceUnits       map[string]ServiceCost `json:"service_units"`
}

type CostYear struct {
	Year           int                  `json:"year"`
	VREPenetration float64              `json:"vre_penetration"`
	Sources        map[string]CostEntry `json:"sources"`
}

type CostRegion struct {
	RegionalMultiplier float64    `json:"regional_multiplier"`
	Timeseries         []CostYear `json:"timeseries"`
}

type CostScenario struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Regions     map[string]CostRegion `json:"regions"`
}

type SystemCostDocument struct {
	Metadata  Metadata                `json:"metadata"`
	Scenarios map[string]CostScenario `json:"scenarios"`
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
