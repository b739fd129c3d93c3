package plants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifetimeCoal(t *testing.T) {
	r := Lifetime(Specs[0])
	assert.Equal(t, "coal", r.ID)
	assert.Equal(t, 147.17, r.GenerationTWh)
	assert.Equal(t, 185.4317, r.UsefulEJ)
	assert.Equal(t, 1514.3587, r.FuelImportsEJ)
	assert.InDelta(t, r.UsefulEJ-r.FuelImportsEJ, r.NetServicesEJ, 1e-4)
	assert.Less(t, r.NetServicesEJ, 0.0)
	assert.InDelta(t, r.NetServicesEJ/600, r.ServicesPerMW, 1e-6)
}

func TestLifetimeRenewableHasNoFuel(t *testing.T) {
	for _, s := range Specs {
		if s.Kind != Renewable {
			continue
		}
		r := Lifetime(s)
		assert.Equal(t, 0.0, r.FuelImportsEJ, s.ID)
		assert.Equal(t, r.UsefulEJ, r.NetServicesEJ, s.ID)
		assert.Greater(t, r.NetServicesEJ, 0.0, s.ID)
	}
	solar := Lifetime(Specs[4])
	assert.Equal(t, 12.61, solar.GenerationTWh)
	assert.Equal(t, 40.8707, solar.UsefulEJ)
}

func TestCompareSortsByNetServices(t *testing.T) {
	c := Compare(Specs)
	require.Len(t, c.PlantTypes, len(Specs))
	assert.Equal(t, "coal", c.PlantTypes[0].ID)
	assert.Equal(t, "hydro", c.PlantTypes[len(c.PlantTypes)-1].ID)
	for i := 1; i < len(c.PlantTypes); i++ {
		assert.LessOrEqual(t, c.PlantTypes[i-1].NetServicesEJ, c.PlantTypes[i].NetServicesEJ)
	}
	assert.NotEmpty(t, c.Metadata.Title)
}

func TestLifetimeZeroCapacity(t *testing.T) {
	r := Lifetime(Spec{ID: "none"})
	assert.Equal(t, 0.0, r.ServicesPerMW)
	assert.Equal(t, 0.0, r.NetServicesEJ)
}
