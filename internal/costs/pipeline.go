package costs

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tripwise/trip-estimator/internal/trip"
)

var (
	// ErrDuplicateComponent is returned when two components share a name.
	ErrDuplicateComponent = errors.New("duplicate cost component name")

	// ErrNilComponent is returned when a pipeline is given a nil component.
	ErrNilComponent = errors.New("nil cost component")
)

// LineItem is one named entry of the breakdown.
type LineItem struct {
	Name   string
	Amount float64
}

// Estimate is the result of running a pipeline over one trip.
type Estimate struct {
	TripName    string
	VehicleName string
	Days        int
	Options     trip.Options

	// Breakdown is in evaluation order.
	Breakdown []LineItem

	// Total is the sum of Breakdown, folded in evaluation order.
	Total float64

	// CrossCheck is the recursive sum of per-day fuel+food+stay+toll.
	// It excludes option charges and extra components.
	CrossCheck float64
}

// Amount returns the breakdown amount recorded under name.
func (e *Estimate) Amount(name string) (float64, bool) {
	for _, item := range e.Breakdown {
		if item.Name == name {
			return item.Amount, true
		}
	}
	return 0, false
}

// AveragePerDay returns Total / Days, or 0 for a trip without days.
func (e *Estimate) AveragePerDay() float64 {
	if e.Days <= 0 {
		return 0
	}
	return e.Total / float64(e.Days)
}

// Pipeline runs an ordered list of components.
type Pipeline struct {
	components []Component
}

// NewPipeline creates a pipeline. Component names must be unique.
func NewPipeline(components ...Component) (*Pipeline, error) {
	seen := make(map[string]bool, len(components))
	for i, c := range components {
		if c == nil {
			return nil, fmt.Errorf("component %d: %w", i, ErrNilComponent)
		}
		if seen[c.Name()] {
			return nil, fmt.Errorf("%q: %w", c.Name(), ErrDuplicateComponent)
		}
		seen[c.Name()] = true
	}
	return &Pipeline{components: append([]Component(nil), components...)}, nil
}

// NewStandardPipeline builds the base components followed by the extras
// resolved from registry.
func NewStandardPipeline(rates Rates, registry *Registry, extras []string, settings ExtraSettings) (*Pipeline, error) {
	components := BaseComponents(rates)
	if registry != nil {
		components = append(components, registry.Resolve(extras, settings)...)
	}
	return NewPipeline(components...)
}

// Names returns the component names in evaluation order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.components))
	for i, c := range p.components {
		names[i] = c.Name()
	}
	return names
}

// Estimate computes every component once, in order, and sums them.
func (p *Pipeline) Estimate(ctx *trip.Context) Estimate {
	est := Estimate{
		TripName:    ctx.Name(),
		VehicleName: ctx.Vehicle().Name(),
		Days:        ctx.Days(),
		Options:     ctx.Options(),
		Breakdown:   make([]LineItem, 0, len(p.components)),
	}

	for _, c := range p.components {
		amount := c.Compute(ctx)
		est.Breakdown = append(est.Breakdown, LineItem{Name: c.Name(), Amount: amount})
		est.Total += amount

		log.Debug().
			Str("component", c.Name()).
			Float64("amount", amount).
			Msg("costs: component computed")
	}

	est.CrossCheck = RecursiveSum(ctx.DayRawCosts())
	return est
}

// RecursiveSum adds values front to back with a tail-recursive fold.
func RecursiveSum(values []float64) float64 {
	return sumFrom(values, 0)
}

func sumFrom(values []float64, acc float64) float64 {
	if len(values) == 0 {
		return acc
	}
	return sumFrom(values[1:], acc+values[0])
}
