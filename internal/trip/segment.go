package trip

import (
	"fmt"

	"github.com/tripwise/trip-estimator/internal/vehicle"
)

// Segment holds one day's raw expense figures.
type Segment struct {
	Label      string
	DistanceKm float64
	Food       float64
	Stay       float64
	Toll       float64
}

// NewSegment creates a segment for the given day. All figures must be >= 0.
func NewSegment(day int, distanceKm, food, stay, toll float64) (Segment, error) {
	fields := []struct {
		name  string
		value float64
	}{
		{"distance", distanceKm},
		{"food", food},
		{"stay", stay},
		{"toll", toll},
	}
	for _, f := range fields {
		if f.value < 0 {
			return Segment{}, fmt.Errorf("day %d %s %.2f: %w", day, f.name, f.value, ErrNegativeValue)
		}
	}
	return Segment{
		Label:      DayLabel(day),
		DistanceKm: distanceKm,
		Food:       food,
		Stay:       stay,
		Toll:       toll,
	}, nil
}

// DayLabel returns the label of a 1-based day number.
func DayLabel(day int) string {
	return fmt.Sprintf("Day-%d", day)
}

// RawCost returns fuel + food + stay + toll for this day, without options.
func (s Segment) RawCost(v vehicle.Vehicle) float64 {
	return v.FuelCost(s.DistanceKm) + s.Food + s.Stay + s.Toll
}

func (s Segment) String() string {
	return fmt.Sprintf("%s (km=%g)", s.Label, s.DistanceKm)
}
