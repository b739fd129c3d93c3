package costs

import "github.com/ANIKETSHETTY47/global-energy-services/internal/domain"

// LCOE is a levelized cost range in $/MWh with its capacity factor.
type LCOE struct {
	Min            float64 `json:"min"`
	Mid            float64 `json:"mid"`
	Max            float64 `json:"max"`
	CapacityFactor float64 `json:"capacity_factor"`
}

// Sources in output order.
var Sources = []string{
	domain.Coal, domain.Oil, domain.Gas, domain.Nuclear, domain.Hydro,
	domain.Wind, domain.Solar, domain.Biofuels, domain.OtherRenewables,
}

// Scenario keys.
const (
	STEPS = "STEPS"
	APS   = "APS"
	NZE   = "NZE"
)

var Scenarios = []string{STEPS, APS, NZE}

var scenarioDescriptions = map[string]string{
	STEPS: "Stated Policies Scenario (IEA baseline)",
	APS:   "Announced Pledges Scenario (current commitments)",
	NZE:   "Net Zero Emissions by 2050",
}

// baseLCOE: Lazard / IRENA / BNEF 2025 estimates.
var baseLCOE = map[int]map[string]LCOE{
	2024: {
		domain.Coal:            {60, 95, 150, 0.70},
		domain.Gas:             {40, 65, 85, 0.60},
		domain.Nuclear:         {130, 165, 200, 0.90},
		domain.Oil:             {100, 140, 180, 0.45},
		domain.Biofuels:        {80, 110, 140, 0.65},
		domain.Hydro:           {40, 60, 80, 0.50},
		domain.Wind:            {25, 38, 50, 0.40},
		domain.Solar:           {20, 32, 40, 0.24},
		domain.OtherRenewables: {35, 50, 70, 0.30},
	},
	2030: {
		domain.Coal:            {65, 105, 160, 0.70},
		domain.Gas:             {45, 70, 90, 0.60},
		domain.Nuclear:         {120, 150, 185, 0.90},
		domain.Oil:             {105, 145, 185, 0.45},
		domain.Biofuels:        {70, 95, 125, 0.65},
		domain.Hydro:           {40, 60, 80, 0.50},
		domain.Wind:            {18, 28, 38, 0.42},
		domain.Solar:           {15, 24, 30, 0.26},
		domain.OtherRenewables: {30, 42, 60, 0.32},
	},
	2050: {
		domain.Coal:            {70, 115, 170, 0.70},
		domain.Gas:             {50, 75, 95, 0.60},
		domain.Nuclear:         {110, 135, 170, 0.90},
		domain.Oil:             {110, 150, 190, 0.45},
		domain.Biofuels:        {60, 80, 110, 0.65},
		domain.Hydro:           {40, 60, 80, 0.50},
		domain.Wind:            {15, 22, 30, 0.45},
		domain.Solar:           {12, 18, 24, 0.28},
		domain.OtherRenewables: {25, 35, 50, 0.35},
	},
}

// vreScenarios is the share of electricity from variable renewables.
var vreScenarios = map[string]map[int]float64{
	STEPS: {2024: 0.15, 2030: 0.28, 2050: 0.55},
	APS:   {2024: 0.15, 2030: 0.40, 2050: 0.75},
	NZE:   {2024: 0.15, 2030: 0.50, 2050: 0.90},
}

// reboundMultipliers scale energy per service unit for induced demand.
var reboundMultipliers = map[string]map[int]float64{
	STEPS: {2024: 1.00, 2030: 1.00, 2050: 1.00},
	APS:   {2024: 1.00, 2030: 1.01, 2050: 1.03},
	NZE:   {2024: 1.00, 2030: 1.02, 2050: 1.05},
}

// SCC is a social-cost-of-carbon scenario in $/tCO2.
type SCC struct {
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

const SCCNone = "none"

var SCCScenarios = map[string]SCC{
	SCCNone:        {0, "No SCC (baseline)", "Excludes external costs - conservative baseline"},
	"conservative": {100, "$100/tCO2", "Conservative estimate of climate damages"},
	"moderate":     {200, "$200/tCO2", "Moderate estimate (EPA 2024 midpoint)"},
	"aggressive":   {400, "$400/tCO2", "High estimate including health and environmental costs"},
}

// SCCKeys in increasing order of value.
var SCCKeys = []string{SCCNone, "conservative", "moderate", "aggressive"}

// CarbonIntensity is lifecycle tCO2 per MWh.
var CarbonIntensity = map[string]float64{
	domain.Coal:            0.90,
	domain.Gas:             0.40,
	domain.Oil:             0.70,
	domain.Nuclear:         0.01,
	domain.Hydro:           0.01,
	domain.Wind:            0.01,
	domain.Solar:           0.04,
	domain.Biofuels:        0.05,
	domain.OtherRenewables: 0.02,
}

// RegionMultiplier scales every cost for a region.
type RegionMultiplier struct {
	Region     string
	Multiplier float64
}

const GlobalRegion = "Global"

var Regions = []RegionMultiplier{
	{GlobalRegion, 1.0},
	{"China", 0.85},
	{"India", 0.75},
	{"United States", 1.15},
	{"Europe", 1.25},
	{"Japan", 1.40},
	{"Middle East", 0.90},
	{"Africa", 0.70},
	{"South America", 0.80},
	{"Australia", 1.10},
}

// Multiplier returns the region's multiplier, 1.0 for unknown regions.
func Multiplier(region string) float64 {
	for _, r := range Regions {
		if r.Region == region {
			return r.Multiplier
		}
	}
	return 1.0
}

// ServiceConversion is the energy needed per unit of a physical service.
type ServiceConversion struct {
	Key         string
	MWhPerUnit  float64
	Label       string
	Description string
}

const (
	HomeHeatingYear = "home_heating_year"
	VehicleKm       = "vehicle_km"
	SteelTonne      = "steel_tonne"
	GJHeat          = "gj_heat"
)

var ServiceConversions = []ServiceConversion{
	{HomeHeatingYear, 12.0, "$/home-year", "Cost per home heated for one year"},
	{VehicleKm, 0.0002, "$/km", "Cost per kilometer driven (electric vehicle)"},
	{SteelTonne, 3.5, "$/tonne", "Cost per tonne of steel produced"},
	{GJHeat, 0.278, "$/GJ", "Cost per gigajoule of heat"},
}
