package costs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripwise/trip-estimator/internal/trip"
	"github.com/tripwise/trip-estimator/internal/vehicle"
)

func goaContext(t *testing.T) *trip.Context {
	t.Helper()
	d1, err := trip.NewSegment(1, 150, 500, 1000, 50)
	require.NoError(t, err)
	d2, err := trip.NewSegment(2, 100, 400, 1000, 30)
	require.NoError(t, err)

	ctx, err := trip.NewContext("Goa", vehicle.NewCar(15, 100), []trip.Segment{d1, d2}, trip.LuxuryStay)
	require.NoError(t, err)
	return ctx
}

func standardPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewStandardPipeline(DefaultRates(), DefaultRegistry(), DefaultExtras,
		ExtraSettings{EmergencyBufferPercent: DefaultEmergencyBufferPercent})
	require.NoError(t, err)
	return p
}

func TestEstimate_GoaScenario(t *testing.T) {
	est := standardPipeline(t).Estimate(goaContext(t))

	want := []struct {
		name   string
		amount float64
	}{
		{NameFuel, 1666.67},
		{NameFood, 900},
		{NameStay, 2000},
		{NameToll, 80},
		{NameOptions, 1600},
		{"Emergency Buffer (5%)", 232.33},
	}

	require.Len(t, est.Breakdown, len(want))
	for i, w := range want {
		assert.Equal(t, w.name, est.Breakdown[i].Name)
		assert.InDelta(t, w.amount, est.Breakdown[i].Amount, 0.005, w.name)
	}

	assert.InDelta(t, 6479.00, est.Total, 0.005)
	assert.InDelta(t, 4646.67, est.CrossCheck, 0.005)
	assert.InDelta(t, 3239.50, est.AveragePerDay(), 0.005)
	assert.Equal(t, "Goa", est.TripName)
	assert.Equal(t, "Petrol Car", est.VehicleName)
	assert.Equal(t, 2, est.Days)
	assert.Equal(t, "Luxury stay", est.Options.Describe())
}

func TestEstimate_BreakdownSumsToTotal(t *testing.T) {
	p := standardPipeline(t)
	vehicles := []vehicle.Vehicle{
		vehicle.NewCar(13.7, 101.3),
		vehicle.NewBike(41, 99.9),
		vehicle.NewElectricVehicle(212, 333.3),
	}

	for _, v := range vehicles {
		for opts := trip.Options(0); opts <= 7; opts++ {
			segs := make([]trip.Segment, 0, 4)
			for day := 1; day <= 4; day++ {
				s, err := trip.NewSegment(day, 77.7*float64(day), 123.45, 999.99, 12.34*float64(day))
				require.NoError(t, err)
				segs = append(segs, s)
			}
			ctx, err := trip.NewContext("sum", v, segs, opts)
			require.NoError(t, err)

			est := p.Estimate(ctx)
			var sum float64
			for _, item := range est.Breakdown {
				sum += item.Amount
			}
			assert.Equal(t, sum, est.Total, "%s opts=%d", v.Name(), opts)
		}
	}
}

func TestEstimate_CrossCheckExcludesOptionsAndExtras(t *testing.T) {
	est := standardPipeline(t).Estimate(goaContext(t))

	var base float64
	for _, name := range []string{NameFuel, NameFood, NameStay, NameToll} {
		v, ok := est.Amount(name)
		require.True(t, ok, name)
		base += v
	}
	assert.InDelta(t, base, est.CrossCheck, 1e-9)
	assert.Less(t, est.CrossCheck, est.Total)
}

func TestOptionCost(t *testing.T) {
	tests := []struct {
		name string
		days int
		opts trip.Options
		want float64
	}{
		{"none", 3, 0, 0},
		{"sightseeing", 3, trip.Sightseeing, 1500},
		{"shopping", 2, trip.Shopping, 600},
		{"luxury", 1, trip.LuxuryStay, 800},
		{"sightseeing and luxury", 3, trip.Sightseeing | trip.LuxuryStay, 3900},
		{"all", 2, trip.Sightseeing | trip.Shopping | trip.LuxuryStay, 3200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := make([]trip.Segment, tt.days)
			for i := range segs {
				segs[i] = trip.Segment{Label: trip.DayLabel(i + 1)}
			}
			ctx, err := trip.NewContext("opts", vehicle.NewBike(40, 100), segs, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, OptionCost{Rates: DefaultRates()}.Compute(ctx))
		})
	}
}

func TestOptionCost_LinearInDays(t *testing.T) {
	oc := OptionCost{Rates: DefaultRates()}
	opts := trip.Sightseeing | trip.Shopping

	var perDay float64
	for days := 1; days <= 5; days++ {
		segs := make([]trip.Segment, days)
		ctx, err := trip.NewContext("linear", vehicle.NewCar(10, 10), segs, opts)
		require.NoError(t, err)
		got := oc.Compute(ctx)
		if days == 1 {
			perDay = got
		}
		assert.Equal(t, perDay*float64(days), got)
	}
	assert.Equal(t, 800.0, perDay)
}

func TestBaseComponents_Order(t *testing.T) {
	p, err := NewPipeline(BaseComponents(DefaultRates())...)
	require.NoError(t, err)
	assert.Equal(t, []string{NameFuel, NameFood, NameStay, NameToll, NameOptions}, p.Names())
}

func TestRegistry_ResolveUnknownIsSkipped(t *testing.T) {
	r := DefaultRegistry()

	got := r.Resolve([]string{"TripCostEstimator$Missing", ExtraEmergencyBuffer, "nope"}, ExtraSettings{EmergencyBufferPercent: 5})
	require.Len(t, got, 1)
	assert.Equal(t, "Emergency Buffer (5%)", got[0].Name())

	assert.Empty(t, r.Resolve([]string{"unregistered"}, ExtraSettings{}))
}

func TestRegistry_UnknownNotInBreakdown(t *testing.T) {
	p, err := NewStandardPipeline(DefaultRates(), DefaultRegistry(), []string{"ghost"}, ExtraSettings{})
	require.NoError(t, err)

	est := p.Estimate(goaContext(t))
	assert.Len(t, est.Breakdown, 5)
	_, ok := est.Amount("ghost")
	assert.False(t, ok)
}

func TestRegistry_FailingFactoriesAreSwallowed(t *testing.T) {
	r := NewRegistry()
	r.Register("errors", func(ExtraSettings) (Component, error) {
		return nil, errors.New("boom")
	})
	r.Register("panics", func(ExtraSettings) (Component, error) {
		panic("kaboom")
	})
	r.Register("nil", func(ExtraSettings) (Component, error) {
		return nil, nil
	})
	r.Register(ExtraEmergencyBuffer, func(s ExtraSettings) (Component, error) {
		return NewEmergencyBuffer(s.EmergencyBufferPercent)
	})

	got := r.Resolve([]string{"errors", "panics", "nil", ExtraEmergencyBuffer}, ExtraSettings{EmergencyBufferPercent: -1})
	assert.Empty(t, got)

	got = r.Resolve(r.IDs(), ExtraSettings{EmergencyBufferPercent: 10})
	require.Len(t, got, 1)
	assert.Equal(t, "Emergency Buffer (10%)", got[0].Name())
}

func TestRegistry_RepeatedIDResolvedOnce(t *testing.T) {
	got := DefaultRegistry().Resolve([]string{ExtraEmergencyBuffer, ExtraEmergencyBuffer}, ExtraSettings{EmergencyBufferPercent: 5})
	assert.Len(t, got, 1)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := DefaultRegistry()
	r.Register(ExtraEmergencyBuffer, func(ExtraSettings) (Component, error) {
		return NewEmergencyBuffer(1)
	})
	assert.Equal(t, []string{ExtraEmergencyBuffer}, r.IDs())

	got := r.Resolve(DefaultExtras, ExtraSettings{EmergencyBufferPercent: 5})
	require.Len(t, got, 1)
	assert.Equal(t, "Emergency Buffer (1%)", got[0].Name())
}

func TestNewPipeline_Errors(t *testing.T) {
	_, err := NewPipeline(FoodCost{}, FoodCost{})
	assert.ErrorIs(t, err, ErrDuplicateComponent)

	_, err = NewPipeline(FoodCost{}, nil)
	assert.ErrorIs(t, err, ErrNilComponent)
}

type countingComponent struct {
	name  string
	calls *int
}

func (c countingComponent) Name() string { return c.name }

func (c countingComponent) Compute(*trip.Context) float64 {
	*c.calls++
	return 1
}

func TestEstimate_ComputesEachComponentOnce(t *testing.T) {
	calls := make([]int, 3)
	components := make([]Component, 3)
	for i := range components {
		components[i] = countingComponent{name: fmt.Sprintf("c%d", i), calls: &calls[i]}
	}
	p, err := NewPipeline(components...)
	require.NoError(t, err)

	est := p.Estimate(goaContext(t))
	assert.Equal(t, []int{1, 1, 1}, calls)
	assert.Equal(t, 3.0, est.Total)
	assert.Equal(t, []string{"c0", "c1", "c2"}, p.Names())
}

func TestRecursiveSum(t *testing.T) {
	assert.Equal(t, 0.0, RecursiveSum(nil))
	assert.Equal(t, 6.0, RecursiveSum([]float64{1, 2, 3}))
	assert.InDelta(t, 0.3, RecursiveSum([]float64{0.1, 0.2}), 1e-12)
}

func TestEstimate_AveragePerDayWithoutDays(t *testing.T) {
	var est Estimate
	assert.Equal(t, 0.0, est.AveragePerDay())
}
