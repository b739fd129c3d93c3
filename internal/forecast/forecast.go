// Package forecast projects useful-energy demand by scenario. Every scenario runs
// through Project; the methods differ only in how the fossil and clean targets and
// the unscaled per-source values are produced.
package forecast

import (
	"fmt"
	"math"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/growth"
)

// Baseline is the starting point of every trajectory.
type Baseline struct {
	Year    int
	Total   float64
	Fossil  float64
	Clean   float64
	Sources map[string]float64
}

// BaselineFrom takes the baseline from a useful-energy record.
func BaselineFrom(r domain.YearRecord) Baseline {
	src := make(map[string]float64, len(r.SourcesUsefulEJ))
	for k, v := range r.SourcesUsefulEJ {
		src[k] = v
	}
	return Baseline{
		Year:    r.Year,
		Total:   r.TotalUsefulEJ,
		Fossil:  r.FossilUsefulEJ,
		Clean:   r.CleanUsefulEJ,
		Sources: src,
	}
}

// DefaultTrends are the annual multipliers used to split anchor and net-demand
// targets across sources.
var DefaultTrends = map[string]float64{
	domain.Coal:       0.970,
	domain.Oil:        0.988,
	domain.Gas:        0.995,
	domain.Wind:       1.12,
	domain.Solar:      1.15,
	domain.Hydro:      1.02,
	domain.Nuclear:    1.03,
	domain.Biomass:    1.01,
	domain.Geothermal: 1.08,
}

type model interface {
	// raw returns unscaled per-source values for year.
	raw(year int) map[string]float64
	// targets returns the fossil and clean subtotals the sources are scaled to.
	targets(year int, raw map[string]float64) (fossil, clean float64)
}

// Project runs one scenario from the baseline through cfg.EndYear.
func Project(base Baseline, rates growth.Rates, cfg Config) (domain.Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return domain.Scenario{}, err
	}
	if cfg.StartYear <= base.Year {
		return domain.Scenario{}, fmt.Errorf("scenario %s: start year %d must follow baseline year %d", cfg.Name, cfg.StartYear, base.Year)
	}

	m, err := newModel(base, rates, cfg)
	if err != nil {
		return domain.Scenario{}, err
	}

	out := domain.Scenario{
		Name:        cfg.Name,
		Description: cfg.Description,
		Method:      string(cfg.Method),
		Parameters:  cfg.params(),
		Data:        make([]domain.Projection, 0, cfg.EndYear-cfg.StartYear+1),
	}
	for year := cfg.StartYear; year <= cfg.EndYear; year++ {
		raw := m.raw(year)
		fossil, clean := m.targets(year, raw)
		rescale(raw, cfg.fossilSources(), fossil)
		rescale(raw, cfg.cleanSources(), clean)
		out.Data = append(out.Data, projection(cfg.Name, year, fossil, clean, raw))
	}
	return out, nil
}

func newModel(base Baseline, rates growth.Rates, cfg Config) (model, error) {
	trends := cfg.Trends
	if len(trends) == 0 {
		trends = DefaultTrends
	}
	sources := append(append([]string{}, cfg.fossilSources()...), cfg.cleanSources()...)

	switch cfg.Method {
	case MethodAnchor:
		anchors := append([]Anchor{{Year: base.Year, Fossil: base.Fossil, Clean: base.Clean}}, cfg.Anchor.Anchors...)
		return &anchorModel{trended: trended{base, sources, trends}, anchors: anchors}, nil
	case MethodNetDemand:
		return &netDemandModel{trended: trended{base, sources, trends}, p: *cfg.NetDemand}, nil
	case MethodCAGR:
		return &cagrModel{base: base, sources: sources, rates: rates, p: *cfg.CAGR}, nil
	case MethodSCurve:
		m := &scurveModel{base: base, cfg: cfg, rates: rates, p: *cfg.SCurve}
		if cfg.SCurve.FossilRamp != nil {
			m.fossilPath = cfg.SCurve.FossilRamp.Path(base.Fossil, base.Year, cfg.EndYear)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMethod, cfg.Method)
}

// trended grows each baseline source by its multiplier; used where the subtotals come
// from elsewhere.
type trended struct {
	base    Baseline
	sources []string
	trends  map[string]float64
}

func (t trended) raw(year int) map[string]float64 {
	n := float64(year - t.base.Year)
	out := make(map[string]float64, len(t.sources))
	for _, s := range t.sources {
		m, ok := t.trends[s]
		if !ok {
			m = 1
		}
		out[s] = t.base.Sources[s] * math.Pow(m, n)
	}
	return out
}

type anchorModel struct {
	trended
	anchors []Anchor
}

func (a *anchorModel) targets(year int, _ map[string]float64) (float64, float64) {
	return interpolate(a.anchors, year)
}

type netDemandModel struct {
	trended
	p NetDemandParams
}

func (m *netDemandModel) targets(year int, _ map[string]float64) (float64, float64) {
	n := float64(year - m.base.Year)
	net := m.base.Total * math.Pow(m.p.DemandGrowth, n) * math.Pow(m.p.EfficiencyGain, n)
	clean := m.base.Clean + m.p.CleanAdditionsEJ*n
	fossil := net - clean
	if m.p.FossilPeakYear > 0 && year >= m.p.FossilPeakYear {
		fossil *= math.Pow(m.p.PostPeakFactor, float64(year-m.p.FossilPeakYear))
	}
	return math.Max(fossil, m.p.FossilFloorEJ), clean
}

type cagrModel struct {
	base    Baseline
	sources []string
	rates   growth.Rates
	p       CAGRParams
}

func (m *cagrModel) raw(year int) map[string]float64 {
	n := year - m.base.Year
	out := make(map[string]float64, len(m.sources))
	for _, s := range m.sources {
		out[s] = growth.Extrapolate(m.base.Sources[s], m.rates.Source(s), n)
	}
	return out
}

func (m *cagrModel) targets(year int, _ map[string]float64) (float64, float64) {
	fossilRate, cleanRate := m.rates.Fossil, m.rates.Clean
	if m.p.FossilRate != nil {
		fossilRate = *m.p.FossilRate
	}
	if m.p.CleanRate != nil {
		cleanRate = *m.p.CleanRate
	}

	clean := growth.Extrapolate(m.base.Clean, cleanRate, year-m.base.Year)
	fossil := Peaked{Rate: &fossilRate, PeakYear: m.p.FossilPeakYear, Decline: m.p.PostPeakRate}.
		Value(m.base.Fossil, m.base.Year, year, fossilRate)
	return math.Max(fossil, m.p.FossilFloorEJ), clean
}

type scurveModel struct {
	base       Baseline
	cfg        Config
	rates      growth.Rates
	p          SCurveParams
	fossilPath map[int]float64
}

func (m *scurveModel) raw(year int) map[string]float64 {
	n := year - m.base.Year
	b := m.base.Sources
	out := map[string]float64{
		domain.Coal:  growth.Extrapolate(b[domain.Coal], m.p.CoalDecline, n),
		domain.Oil:   m.p.Oil.Value(b[domain.Oil], m.base.Year, year, m.rates.Source(domain.Oil)),
		domain.Gas:   m.p.Gas.Value(b[domain.Gas], m.base.Year, year, m.rates.Source(domain.Gas)),
		domain.Wind:  m.p.Wind.Calibrated(float64(n), b[domain.Wind]),
		domain.Solar: m.p.Solar.Calibrated(float64(n), b[domain.Solar]),
	}
	for _, s := range append(append([]string{}, m.cfg.fossilSources()...), m.cfg.cleanSources()...) {
		if _, done := out[s]; done {
			continue
		}
		out[s] = growth.Extrapolate(b[s], m.p.Growth[s], n)
	}
	return out
}

func (m *scurveModel) targets(year int, raw map[string]float64) (float64, float64) {
	fossil := sum(raw, m.cfg.fossilSources())
	if m.fossilPath != nil {
		fossil = m.fossilPath[year]
	}
	return fossil, sum(raw, m.cfg.cleanSources())
}

func sum(values map[string]float64, keys []string) float64 {
	var t float64
	for _, k := range keys {
		t += values[k]
	}
	return t
}

// rescale scales the listed sources in place so they sum to target. All-zero sources
// are left alone.
func rescale(values map[string]float64, keys []string, target float64) {
	s := sum(values, keys)
	if s <= 0 {
		return
	}
	f := target / s
	for _, k := range keys {
		values[k] *= f
	}
}

func projection(scenario string, year int, fossil, clean float64, sources map[string]float64) domain.Projection {
	fossilR, cleanR := domain.Round(fossil, 2), domain.Round(clean, 2)
	total := domain.Round(fossilR+cleanR, 2)

	var fossilShare, cleanShare float64
	if total > 0 {
		fossilShare = domain.Round(fossilR/total*100, 1)
		cleanShare = domain.Round(100-fossilShare, 1)
	}
	src := make(map[string]float64, len(sources))
	for k, v := range sources {
		src[k] = domain.Round(v, 3)
	}
	return domain.Projection{
		Year:               year,
		Scenario:           scenario,
		TotalUsefulEJ:      total,
		FossilUsefulEJ:     fossilR,
		CleanUsefulEJ:      cleanR,
		FossilSharePercent: fossilShare,
		CleanSharePercent:  cleanShare,
		SourcesUsefulEJ:    src,
	}
}
