package forecast

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

const (
	BaselineName    = "Baseline (STEPS)"
	AcceleratedName = "Accelerated (APS)"
	NetZeroName     = "Net-Zero (NZE)"
)

// Model describes the scenario set produced by a method for the output metadata.
type Model struct {
	Name        string
	Version     string
	Methodology string
}

var models = map[Method]Model{
	MethodAnchor: {
		Name:        "Energy Services Demand Growth Model",
		Version:     "1.9",
		Methodology: "Baseline interpolated between fixed anchors; policy scenarios from net demand with efficiency gains and fixed clean additions",
	},
	MethodNetDemand: {
		Name:        "Energy Services Demand Growth Model",
		Version:     "1.9",
		Methodology: "Net demand with efficiency gains, fixed clean additions and post-peak fossil decline",
	},
	MethodCAGR: {
		Name:        "Pure CAGR Model",
		Version:     "3.0",
		Methodology: "Historical compound growth until the fossil peak, fixed decline afterwards",
	},
	MethodSCurve: {
		Name:        "Improved CAGR Model with S-Curve & Smooth Decline",
		Version:     "3.1",
		Methodology: "Logistic wind and solar adoption, fuel-specific fossil trajectories scaled to a smoothly declining fossil ramp",
	},
}

// Describe returns the model descriptor for a method.
func Describe(m Method) (Model, error) {
	d, ok := models[m]
	if !ok {
		return Model{}, fmt.Errorf("%w %q", ErrUnknownMethod, m)
	}
	return d, nil
}

var descriptions = map[string]string{
	BaselineName:    "Current policies continue; fossil fuels peak around 2030 and decline slowly",
	AcceleratedName: "Announced pledges met; faster clean deployment and an earlier fossil peak",
	NetZeroName:     "Net zero emissions by 2050; rapid clean build-out and steep fossil decline",
}

// DefaultScenarios returns the built-in baseline, accelerated and net-zero configs for
// a method. Anchor and net_demand share one set: an anchored baseline and net-demand
// policy scenarios.
func DefaultScenarios(method Method, base Baseline, endYear int) ([]Config, error) {
	start := base.Year + 1
	newCfg := func(name string, m Method) Config {
		return Config{Name: name, Description: descriptions[name], Method: m, StartYear: start, EndYear: endYear}
	}

	switch method {
	case MethodAnchor, MethodNetDemand:
		b := newCfg(BaselineName, MethodAnchor)
		b.Anchor = &AnchorParams{Anchors: DefaultAnchors(base)}

		aps := newCfg(AcceleratedName, MethodNetDemand)
		aps.NetDemand = &NetDemandParams{
			DemandGrowth: 1.008, EfficiencyGain: 0.988, CleanAdditionsEJ: 5.0,
			FossilPeakYear: 2030, PostPeakFactor: 0.985, FossilFloorEJ: 20,
		}
		nze := newCfg(NetZeroName, MethodNetDemand)
		nze.NetDemand = &NetDemandParams{
			DemandGrowth: 1.005, EfficiencyGain: 0.982, CleanAdditionsEJ: 6.5,
			FossilPeakYear: 2028, PostPeakFactor: 0.97, FossilFloorEJ: 20,
		}
		return []Config{b, aps, nze}, nil

	case MethodCAGR:
		b := newCfg(BaselineName, MethodCAGR)
		b.CAGR = &CAGRParams{FossilPeakYear: 2030, PostPeakRate: -0.015}

		aps := newCfg(AcceleratedName, MethodCAGR)
		aps.CAGR = &CAGRParams{CleanRate: ptr(0.05), FossilPeakYear: 2029, PostPeakRate: -0.025}

		nze := newCfg(NetZeroName, MethodCAGR)
		nze.CAGR = &CAGRParams{CleanRate: ptr(0.065), FossilPeakYear: 2028, PostPeakRate: -0.03, FossilFloorEJ: 20}
		return []Config{b, aps, nze}, nil

	case MethodSCurve:
		b := newCfg(BaselineName, MethodSCurve)
		b.SCurve = &SCurveParams{
			Wind:        Logistic{L: 65, K: 0.15, T0: 15},
			Solar:       Logistic{L: 80, K: 0.18, T0: 13},
			CoalDecline: -0.03,
			Oil:         Peaked{PeakYear: 2030, Decline: -0.01},
			Gas:         Peaked{Rate: ptr(0.005), PeakYear: 2035, Decline: -0.01},
			Growth:      cleanGrowth(0.015, 0.02, 0.01, 0.035),
			FossilRamp:  &Ramp{StartRate: 0.005, EndRate: -0.015, StartYear: 2025, EndYear: 2035},
		}

		aps := newCfg(AcceleratedName, MethodSCurve)
		aps.SCurve = &SCurveParams{
			Wind:        Logistic{L: 80, K: 0.18, T0: 12},
			Solar:       Logistic{L: 100, K: 0.22, T0: 10},
			CoalDecline: -0.05,
			Oil:         Peaked{PeakYear: 2028, Decline: -0.02},
			Gas:         Peaked{Rate: ptr(0.005), PeakYear: 2032, Decline: -0.02},
			Growth:      cleanGrowth(0.025, 0.025, 0.015, 0.045),
			FossilRamp:  &Ramp{StartRate: 0.0, EndRate: -0.025, StartYear: 2025, EndYear: 2033},
		}

		nze := newCfg(NetZeroName, MethodSCurve)
		nze.SCurve = &SCurveParams{
			Wind:        Logistic{L: 100, K: 0.22, T0: 10},
			Solar:       Logistic{L: 130, K: 0.25, T0: 8},
			CoalDecline: -0.08,
			Oil:         Peaked{PeakYear: 2028, Decline: -0.04},
			Gas:         Peaked{Rate: ptr(0.005), PeakYear: 2028, Decline: -0.04},
			Growth:      cleanGrowth(0.035, 0.03, 0.02, 0.055),
			FossilRamp:  &Ramp{StartRate: -0.005, EndRate: -0.04, StartYear: 2025, EndYear: 2030},
		}
		return []Config{b, aps, nze}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMethod, method)
}

func cleanGrowth(nuclear, hydro, biomass, geothermal float64) map[string]float64 {
	return map[string]float64{
		domain.Nuclear:    nuclear,
		domain.Hydro:      hydro,
		domain.Biomass:    biomass,
		domain.Geothermal: geothermal,
	}
}

// DefaultAnchors are the baseline anchors relative to the base year values.
func DefaultAnchors(base Baseline) []Anchor {
	f25 := base.Fossil * 1.004
	c25 := base.Total + 5.48 - f25
	f28 := f25 * 1.003 * 1.003 * 1.003
	c28 := c25 + 3.0*3
	f35 := f28 * 1.003
	c35 := c28 + 2.8*7
	return []Anchor{
		{Year: base.Year + 1, Fossil: f25, Clean: c25},
		{Year: 2028, Fossil: f28, Clean: c28},
		{Year: 2035, Fossil: f35, Clean: c35},
		{Year: 2040, Fossil: 150, Clean: 130},
		{Year: 2050, Fossil: 105, Clean: 205},
	}
}

// ScenarioFile is the YAML layout of a scenarios file.
type ScenarioFile struct {
	Method    Method   `yaml:"method"`
	Scenarios []Config `yaml:"scenarios"`
}

// LoadScenarios reads scenario configs from a YAML file. Missing years default to the
// year after the baseline and endYear; a scenario without a method inherits the file's.
func LoadScenarios(path string, baseYear, endYear int) (Method, []Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read scenarios %s: %w", path, err)
	}
	var f ScenarioFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return "", nil, fmt.Errorf("failed to decode scenarios %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return "", nil, fmt.Errorf("scenarios file %s lists no scenarios", path)
	}

	for i := range f.Scenarios {
		c := &f.Scenarios[i]
		if c.Method == "" {
			c.Method = f.Method
		}
		if c.StartYear == 0 {
			c.StartYear = baseYear + 1
		}
		if c.EndYear == 0 {
			c.EndYear = endYear
		}
		if err := c.Validate(); err != nil {
			return "", nil, fmt.Errorf("invalid scenarios file %s: %w", path, err)
		}
	}
	method := f.Method
	if method == "" {
		method = f.Scenarios[0].Method
	}
	return method, f.Scenarios, nil
}
