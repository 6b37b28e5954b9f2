package costs

import (
	"fmt"

	"github.com/tripwise/trip-estimator/internal/trip"
)

// DefaultEmergencyBufferPercent is the share of the raw trip cost reserved
// for emergencies.
const DefaultEmergencyBufferPercent = 5.0

// EmergencyBuffer adds a percentage of fuel + food + stay + toll, summed over
// all days. Option charges are not part of its base.
type EmergencyBuffer struct {
	Percent float64
}

// NewEmergencyBuffer creates the buffer component. Percent must be >= 0.
func NewEmergencyBuffer(percent float64) (*EmergencyBuffer, error) {
	if percent < 0 {
		return nil, fmt.Errorf("emergency buffer percent must be >= 0, got %f", percent)
	}
	return &EmergencyBuffer{Percent: percent}, nil
}

func (b *EmergencyBuffer) Name() string {
	return fmt.Sprintf("Emergency Buffer (%g%%)", b.Percent)
}

func (b *EmergencyBuffer) Compute(ctx *trip.Context) float64 {
	v := ctx.Vehicle()
	var base float64
	ctx.EachSegment(func(s trip.Segment) {
		base += v.FuelCost(s.DistanceKm)
		base += s.Food + s.Stay + s.Toll
	})
	return base * b.Percent / 100
}

var _ Component = (*EmergencyBuffer)(nil)
