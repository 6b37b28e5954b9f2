package costs

import (
	"fmt"

	"github.com/tripwise/trip-estimator/internal/trip"
)

// Rates holds the per-day charges of the option flags.
type Rates struct {
	SightseeingPerDay float64 `yaml:"sightseeing_per_day"`
	ShoppingPerDay    float64 `yaml:"shopping_per_day"`
	LuxuryStayPerDay  float64 `yaml:"luxury_stay_per_day"`
}

// DefaultRates returns the standard option charges.
func DefaultRates() Rates {
	return Rates{
		SightseeingPerDay: 500,
		ShoppingPerDay:    300,
		LuxuryStayPerDay:  800,
	}
}

// Validate checks the rates.
func (r *Rates) Validate() error {
	if r.SightseeingPerDay < 0 {
		return fmt.Errorf("options.sightseeing_per_day must be >= 0, got %f", r.SightseeingPerDay)
	}
	if r.ShoppingPerDay < 0 {
		return fmt.Errorf("options.shopping_per_day must be >= 0, got %f", r.ShoppingPerDay)
	}
	if r.LuxuryStayPerDay < 0 {
		return fmt.Errorf("options.luxury_stay_per_day must be >= 0, got %f", r.LuxuryStayPerDay)
	}
	return nil
}

// PerDay returns the daily charge of a single flag.
func (r Rates) PerDay(flag trip.Options) float64 {
	switch flag {
	case trip.Sightseeing:
		return r.SightseeingPerDay
	case trip.Shopping:
		return r.ShoppingPerDay
	case trip.LuxuryStay:
		return r.LuxuryStayPerDay
	}
	return 0
}

// BaseComponents returns the fixed components in evaluation order.
func BaseComponents(rates Rates) []Component {
	return []Component{
		FuelCost{},
		FoodCost{},
		StayCost{},
		TollCost{},
		OptionCost{Rates: rates},
	}
}

// FuelCost sums the vehicle's fuel cost over every day.
type FuelCost struct{}

func (FuelCost) Name() string { return NameFuel }

func (FuelCost) Compute(ctx *trip.Context) float64 {
	v := ctx.Vehicle()
	var sum float64
	ctx.EachSegment(func(s trip.Segment) {
		sum += v.FuelCost(s.DistanceKm)
	})
	return sum
}

// FoodCost sums daily food.
type FoodCost struct{}

func (FoodCost) Name() string { return NameFood }

func (FoodCost) Compute(ctx *trip.Context) float64 {
	var sum float64
	ctx.EachSegment(func(s trip.Segment) { sum += s.Food })
	return sum
}

// StayCost sums daily stay.
type StayCost struct{}

func (StayCost) Name() string { return NameStay }

func (StayCost) Compute(ctx *trip.Context) float64 {
	var sum float64
	ctx.EachSegment(func(s trip.Segment) { sum += s.Stay })
	return sum
}

// TollCost sums daily toll and parking.
type TollCost struct{}

func (TollCost) Name() string { return NameToll }

func (TollCost) Compute(ctx *trip.Context) float64 {
	var sum float64
	ctx.EachSegment(func(s trip.Segment) { sum += s.Toll })
	return sum
}

// OptionCost charges each selected option flag once per day.
type OptionCost struct {
	Rates Rates
}

func (OptionCost) Name() string { return NameOptions }

func (o OptionCost) Compute(ctx *trip.Context) float64 {
	days := float64(ctx.Days())
	flags := ctx.Options()

	var extra float64
	for _, f := range trip.AllOptions {
		if flags.Has(f) {
			extra += o.Rates.PerDay(f) * days
		}
	}
	return extra
}

// Verify base components implement Component.
var (
	_ Component = FuelCost{}
	_ Component = FoodCost{}
	_ Component = StayCost{}
	_ Component = TollCost{}
	_ Component = OptionCost{}
)
