package costs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

func TestInterpolateClamps(t *testing.T) {
	pts := map[int]float64{2024: 10, 2030: 16, 2050: 36}
	assert.Equal(t, 10.0, interpolate(2000, pts))
	assert.InDelta(t, 13.0, interpolate(2027, pts), 1e-12)
	assert.InDelta(t, 26.0, interpolate(2040, pts), 1e-12)
	assert.Equal(t, 36.0, interpolate(2060, pts))
}

func TestBaseLCOE(t *testing.T) {
	l, err := BaseLCOE(domain.Coal, 2027)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, l.Mid, 1e-9)
	assert.InDelta(t, 62.5, l.Min, 1e-9)
	assert.InDelta(t, 0.70, l.CapacityFactor, 1e-12)

	s, err := BaseLCOE(domain.Solar, 2040)
	require.NoError(t, err)
	assert.InDelta(t, 0.27, s.CapacityFactor, 1e-12)

	_, err = BaseLCOE("unobtainium", 2030)
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestSystemCostBands(t *testing.T) {
	tests := []struct {
		source string
		vre    float64
		want   float64
	}{
		{domain.Solar, 0.29, 60},
		{domain.Solar, 0.30, 95},
		{domain.Wind, 0.60, 120},
		{domain.OtherRenewables, 0.80, 145},
		{domain.Nuclear, 0.15, 20},
		{domain.Nuclear, 0.45, 10},
		{domain.Nuclear, 0.70, -30},
		{domain.Nuclear, 0.90, -40},
		{domain.Gas, 0.15, 35},
		{domain.Gas, 0.90, 220},
		{domain.Hydro, 0.90, 35},
		{domain.Biofuels, 0.10, 35},
		{domain.Coal, 0.90, 35},
		{domain.Oil, 0.10, 35},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SystemCosts(tt.source, tt.vre).Total(), "%s at %.2f", tt.source, tt.vre)
	}
}

func TestEntryIdentity(t *testing.T) {
	e, err := Entry(domain.Solar, 2024, STEPS, GlobalRegion, SCCNone)
	require.NoError(t, err)
	assert.Equal(t, 32.0, e.BaseLCOEMWh)
	assert.Equal(t, 60.0, e.TotalSystemCostMWh)
	assert.Equal(t, 92.0, e.TotalLCOESMWh)
	assert.Equal(t, 1104.0, e.ServiceUnits[HomeHeatingYear].Value)
	assert.Equal(t, 0.02, e.ServiceUnits[VehicleKm].Value)
	assert.Equal(t, 0.0002, e.ServiceUnits[VehicleKm].MWhPerUnit)
	assert.Equal(t, "$/home-year", e.ServiceUnits[HomeHeatingYear].Label)
	assert.Equal(t, 1.0, e.ReboundMultiplier)

	jp, err := Entry(domain.Coal, 2024, STEPS, "Japan", "moderate")
	require.NoError(t, err)
	assert.Equal(t, 180.0, jp.SCCCostMWh)
	assert.InDelta(t, 1.40*(95+35+180), jp.TotalLCOESMWh, 0.005)
	assert.Equal(t, 0.9, jp.CarbonIntensity)
}

func TestEntryNetZero2050(t *testing.T) {
	e, err := Entry(domain.Nuclear, 2050, NZE, GlobalRegion, SCCNone)
	require.NoError(t, err)
	assert.Less(t, e.TotalSystemCostMWh, 0.0)
	assert.Equal(t, 95.0, e.TotalLCOESMWh)
	assert.Equal(t, 1.05, e.ReboundMultiplier)
	assert.Equal(t, 12.6, e.ServiceUnits[HomeHeatingYear].MWhPerUnit)
	assert.InDelta(t, 95*12.6, e.ServiceUnits[HomeHeatingYear].Value, 0.005)
}

func TestEntryErrors(t *testing.T) {
	_, err := Entry(domain.Solar, 2030, "XYZ", GlobalRegion, SCCNone)
	assert.ErrorIs(t, err, ErrUnknownScenario)

	_, err = Entry(domain.Solar, 2030, STEPS, GlobalRegion, "extreme")
	assert.ErrorIs(t, err, ErrUnknownSCC)

	// unknown regions fall back to 1.0
	e, err := Entry(domain.Solar, 2024, STEPS, "Atlantis", SCCNone)
	require.NoError(t, err)
	assert.Equal(t, 92.0, e.TotalLCOESMWh)
}

func TestGenerate(t *testing.T) {
	doc, err := Generate(SCCNone)
	require.NoError(t, err)
	require.Len(t, doc.Scenarios, 3)
	assert.Equal(t, "2.0", doc.Metadata.Version)
	assert.Equal(t, SCCKeys, doc.Metadata.Extra["scc_scenarios_available"])

	steps := doc.Scenarios[STEPS]
	assert.Equal(t, "Stated Policies Scenario (IEA baseline)", steps.Description)
	require.Len(t, steps.Regions, len(Regions))

	global := steps.Regions[GlobalRegion]
	require.Len(t, global.Timeseries, LastYear-FirstYear+1)
	first := global.Timeseries[0]
	assert.Equal(t, 2024, first.Year)
	assert.Equal(t, 0.15, first.VREPenetration)
	assert.Len(t, first.Sources, len(Sources))

	nze := doc.Scenarios[NZE].Regions[GlobalRegion].Timeseries
	assert.Equal(t, 0.9, nze[len(nze)-1].VREPenetration)

	_, err = Generate("extreme")
	assert.ErrorIs(t, err, ErrUnknownSCC)
}
