// Package trip holds the immutable inputs of one cost estimate.
//
// DESIGN: A Context is built once per trip-creation flow and then only read.
// Its fields are unexported and Segments returns a copy, so cost components
// cannot change what the next component sees.
package trip

import (
	"errors"

	"github.com/tripwise/trip-estimator/internal/vehicle"
)

var (
	// ErrNegativeValue is returned when a per-day figure is below zero.
	ErrNegativeValue = errors.New("value cannot be negative")

	// ErrNoSegments is returned when a trip has no days.
	ErrNoSegments = errors.New("trip must have at least one day")

	// ErrNoVehicle is returned when a trip has no vehicle.
	ErrNoVehicle = errors.New("trip requires a vehicle")
)

// Context is the read-only aggregate passed to every cost component.
type Context struct {
	name     string
	vehicle  vehicle.Vehicle
	segments []Segment
	options  Options
}

// NewContext creates a trip context. Segments are copied; their order is day order.
func NewContext(name string, v vehicle.Vehicle, segments []Segment, options Options) (*Context, error) {
	if v == nil {
		return nil, ErrNoVehicle
	}
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	for _, s := range segments {
		if s.DistanceKm < 0 || s.Food < 0 || s.Stay < 0 || s.Toll < 0 {
			return nil, ErrNegativeValue
		}
	}

	segs := make([]Segment, len(segments))
	copy(segs, segments)

	return &Context{
		name:     name,
		vehicle:  v,
		segments: segs,
		options:  options,
	}, nil
}

// Name returns the trip name.
func (c *Context) Name() string { return c.name }

// Vehicle returns the trip's vehicle.
func (c *Context) Vehicle() vehicle.Vehicle { return c.vehicle }

// Options returns the option flags.
func (c *Context) Options() Options { return c.options }

// Days returns the number of segments.
func (c *Context) Days() int { return len(c.segments) }

// Segments returns a copy of the segments in day order.
func (c *Context) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// EachSegment calls fn for every segment in day order without copying the slice.
func (c *Context) EachSegment(fn func(Segment)) {
	for _, s := range c.segments {
		fn(s)
	}
}

// DayRawCosts returns fuel+food+stay+toll for each day, in order.
func (c *Context) DayRawCosts() []float64 {
	costs := make([]float64, len(c.segments))
	for i, s := range c.segments {
		costs[i] = s.RawCost(c.vehicle)
	}
	return costs
}
