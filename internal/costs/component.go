// Package costs computes a trip's cost breakdown.
//
// DESIGN: A Pipeline is an ordered list of independent Components. Each
// component prices one category from a read-only trip.Context:
//   - Fuel Cost:            vehicle fuel cost summed over all days
//   - Food Cost:            sum of daily food
//   - Stay Cost:            sum of daily stay
//   - Toll & Parking:       sum of daily toll
//   - Options & Activities: per-day charge for each selected option flag
//
// Additional components are resolved by identifier from a static Registry
// (see registry.go). Unknown identifiers are skipped, never reported.
//
// FLOW:
//  1. Base components are created from Rates
//  2. Registry.Resolve appends the configured extras
//  3. Pipeline.Estimate computes every component once, in order
//  4. The Estimate keeps the ordered breakdown, the total and the cross-check
package costs

import "github.com/tripwise/trip-estimator/internal/trip"

// Component prices one cost category of a trip.
// Components must not keep per-trip state or modify the context.
type Component interface {
	// Name returns the label shown in the breakdown. Unique within a pipeline.
	Name() string

	// Compute returns the category cost for the trip.
	Compute(ctx *trip.Context) float64
}

// Component names as they appear in reports.
const (
	NameFuel    = "Fuel Cost"
	NameFood    = "Food Cost"
	NameStay    = "Stay Cost"
	NameToll    = "Toll & Parking"
	NameOptions = "Options & Activities"
)
