package forecast

import (
	"errors"
	"fmt"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

// Method selects how a scenario's fossil and clean trajectories are produced.
type Method string

const (
	MethodAnchor    Method = "anchor"
	MethodNetDemand Method = "net_demand"
	MethodCAGR      Method = "cagr"
	MethodSCurve    Method = "scurve"
)

var ErrUnknownMethod = errors.New("unknown forecast method")

// Config holds everything that distinguishes one scenario trajectory from another.
// Exactly one of the method blocks is set, matching Method.
type Config struct {
	Name          string             `json:"name" yaml:"name"`
	Description   string             `json:"description" yaml:"description"`
	Method        Method             `json:"method" yaml:"method"`
	StartYear     int                `json:"start_year" yaml:"start_year"`
	EndYear       int                `json:"end_year" yaml:"end_year"`
	FossilSources []string           `json:"fossil_sources,omitempty" yaml:"fossil_sources,omitempty"`
	CleanSources  []string           `json:"clean_sources,omitempty" yaml:"clean_sources,omitempty"`
	Trends        map[string]float64 `json:"source_trends,omitempty" yaml:"source_trends,omitempty"`

	Anchor    *AnchorParams    `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	NetDemand *NetDemandParams `json:"net_demand,omitempty" yaml:"net_demand,omitempty"`
	CAGR      *CAGRParams      `json:"cagr,omitempty" yaml:"cagr,omitempty"`
	SCurve    *SCurveParams    `json:"scurve,omitempty" yaml:"scurve,omitempty"`
}

type AnchorParams struct {
	Anchors []Anchor `json:"anchors" yaml:"anchors"`
}

// NetDemandParams: net = total₀ × DemandGrowth^n × EfficiencyGain^n, clean grows by a
// fixed amount each year, fossil is the remainder.
type NetDemandParams struct {
	DemandGrowth     float64 `json:"demand_growth" yaml:"demand_growth"`
	EfficiencyGain   float64 `json:"efficiency_gain" yaml:"efficiency_gain"`
	CleanAdditionsEJ float64 `json:"clean_additions_ej" yaml:"clean_additions_ej"`
	FossilPeakYear   int     `json:"fossil_peak_year" yaml:"fossil_peak_year"`
	PostPeakFactor   float64 `json:"post_peak_factor" yaml:"post_peak_factor"`
	FossilFloorEJ    float64 `json:"fossil_floor_ej" yaml:"fossil_floor_ej"`
}

// CAGRParams: nil rates use the historical CAGRs.
type CAGRParams struct {
	FossilRate     *float64 `json:"fossil_rate,omitempty" yaml:"fossil_rate,omitempty"`
	CleanRate      *float64 `json:"clean_rate,omitempty" yaml:"clean_rate,omitempty"`
	FossilPeakYear int      `json:"fossil_peak_year" yaml:"fossil_peak_year"`
	PostPeakRate   float64  `json:"post_peak_rate" yaml:"post_peak_rate"`
	FossilFloorEJ  float64  `json:"fossil_floor_ej,omitempty" yaml:"fossil_floor_ej,omitempty"`
}

type SCurveParams struct {
	Wind        Logistic           `json:"wind" yaml:"wind"`
	Solar       Logistic           `json:"solar" yaml:"solar"`
	CoalDecline float64            `json:"coal_decline" yaml:"coal_decline"`
	Oil         Peaked             `json:"oil" yaml:"oil"`
	Gas         Peaked             `json:"gas" yaml:"gas"`
	Growth      map[string]float64 `json:"growth" yaml:"growth"`
	FossilRamp  *Ramp              `json:"fossil_ramp,omitempty" yaml:"fossil_ramp,omitempty"`
}

func (c Config) fossilSources() []string {
	if len(c.FossilSources) > 0 {
		return c.FossilSources
	}
	return domain.FossilSources
}

func (c Config) cleanSources() []string {
	if len(c.CleanSources) > 0 {
		return c.CleanSources
	}
	return domain.CleanSources
}

// params is the method block written next to the scenario data.
func (c Config) params() any {
	switch c.Method {
	case MethodAnchor:
		return c.Anchor
	case MethodNetDemand:
		return c.NetDemand
	case MethodCAGR:
		return c.CAGR
	case MethodSCurve:
		return c.SCurve
	}
	return nil
}

// Validate checks the config is complete for its method.
func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("scenario name is required")
	}
	if c.StartYear == 0 || c.EndYear < c.StartYear {
		return fmt.Errorf("scenario %s: invalid year range %d-%d", c.Name, c.StartYear, c.EndYear)
	}

	set := 0
	for _, b := range []bool{c.Anchor != nil, c.NetDemand != nil, c.CAGR != nil, c.SCurve != nil} {
		if b {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("scenario %s: exactly one method block must be set, found %d", c.Name, set)
	}

	switch c.Method {
	case MethodAnchor:
		if c.Anchor == nil || len(c.Anchor.Anchors) == 0 {
			return fmt.Errorf("scenario %s: anchor method needs anchors", c.Name)
		}
	case MethodNetDemand:
		if c.NetDemand == nil || c.NetDemand.DemandGrowth <= 0 || c.NetDemand.EfficiencyGain <= 0 {
			return fmt.Errorf("scenario %s: net_demand needs positive demand_growth and efficiency_gain", c.Name)
		}
	case MethodCAGR:
		if c.CAGR == nil || c.CAGR.FossilPeakYear == 0 {
			return fmt.Errorf("scenario %s: cagr needs fossil_peak_year", c.Name)
		}
	case MethodSCurve:
		if c.SCurve == nil {
			return fmt.Errorf("scenario %s: scurve block missing", c.Name)
		}
		for label, l := range map[string]Logistic{"wind": c.SCurve.Wind, "solar": c.SCurve.Solar} {
			if l.L <= 0 || l.K <= 0 {
				return fmt.Errorf("scenario %s: %s curve needs positive saturation and steepness", c.Name, label)
			}
		}
		if r := c.SCurve.FossilRamp; r != nil && r.EndYear <= r.StartYear {
			return fmt.Errorf("scenario %s: fossil ramp must end after it starts", c.Name)
		}
	default:
		return fmt.Errorf("scenario %s: %w %q", c.Name, ErrUnknownMethod, c.Method)
	}
	return nil
}
