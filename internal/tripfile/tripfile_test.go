package tripfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/trip-estimator/internal/trip"
	"github.com/tripwise/trip-estimator/internal/vehicle"
)

const goaYAML = `
name: Goa
vehicle:
  kind: Car
  mileage_km_per_litre: 15
  fuel_price_per_litre: 100
options: [luxury_stay]
days:
  - {distance_km: 150, food: 500, stay: 1000, toll: 50}
  - {distance_km: 100, food: 400, stay: 1000, toll: 30}
`

func TestParse_Goa(t *testing.T) {
	f, err := Parse([]byte(goaYAML))
	require.NoError(t, err)

	ctx, err := f.Context()
	require.NoError(t, err)
	assert.Equal(t, "Goa", ctx.Name())
	assert.Equal(t, 2, ctx.Days())
	assert.Equal(t, trip.LuxuryStay, ctx.Options())
	assert.Equal(t, vehicle.KindCar, ctx.Vehicle().Kind())
	assert.Equal(t, "Day-2", ctx.Segments()[1].Label)
}

func TestParse_ElectricVehicle(t *testing.T) {
	f, err := Parse([]byte(`
name: Coorg
vehicle: {kind: ev, range_per_charge_km: 200, cost_per_charge: 350}
options: [Sightseeing, shopping]
days:
  - {distance_km: 250}
`))
	require.NoError(t, err)

	v, err := f.BuildVehicle()
	require.NoError(t, err)
	assert.Equal(t, 700.0, v.FuelCost(250))
	assert.Equal(t, trip.Sightseeing|trip.Shopping, f.OptionFlags())
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "missing name",
			yaml:    "vehicle: {kind: car}\ndays: [{distance_km: 1}]\n",
			wantMsg: "name is required",
		},
		{
			name:    "no days",
			yaml:    "name: x\nvehicle: {kind: car}\ndays: []\n",
			wantMsg: "days",
		},
		{
			name:    "negative food",
			yaml:    "name: x\nvehicle: {kind: bike}\ndays: [{food: -2}]\n",
			wantMsg: "days[0].food must be >= 0",
		},
		{
			name:    "unknown vehicle",
			yaml:    "name: x\nvehicle: {kind: truck}\ndays: [{distance_km: 1}]\n",
			wantMsg: "vehicle.kind must be one of",
		},
		{
			name:    "unknown option",
			yaml:    "name: x\nvehicle: {kind: car}\noptions: [scuba]\ndays: [{distance_km: 1}]\n",
			wantMsg: "options[0]",
		},
		{
			name:    "multi-line name",
			yaml:    "name: \"Goa\\nDays: 99\"\nvehicle: {kind: car}\ndays: [{distance_km: 1}]\n",
			wantMsg: "name must be a single line",
		},
		{
			name:    "negative mileage",
			yaml:    "name: x\nvehicle: {kind: car, mileage_km_per_litre: -1}\ndays: [{distance_km: 1}]\n",
			wantMsg: "vehicle.mileage_km_per_litre must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(goaYAML), 0600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Goa", f.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
