// Package vehicle models the fuel cost of driving a distance.
//
// DESIGN: Three concrete vehicles share one capability, FuelCost. Combustion
// vehicles (Car, Bike) burn litres at a fixed mileage; electric vehicles pay per
// full charge, rounding partial charges up. Degenerate parameters (mileage or
// range <= 0) price every distance at zero instead of dividing by zero.
package vehicle

import (
	"fmt"
	"math"
	"strings"
)

// Vehicle prices the energy needed to cover a distance.
type Vehicle interface {
	// Name returns the display name used in reports and the history log.
	Name() string

	// Kind returns the vehicle family.
	Kind() Kind

	// FuelCost returns the energy cost for distanceKm. Never negative.
	FuelCost(distanceKm float64) float64
}

// Kind identifies a vehicle family. Values match the interactive menu numbers.
type Kind int

const (
	KindCar  Kind = 1
	KindBike Kind = 2
	KindEV   Kind = 3
)

// AllKinds returns the selectable vehicle kinds in menu order.
func AllKinds() []Kind {
	return []Kind{KindCar, KindBike, KindEV}
}

// IsValid checks if the kind is one of the known families.
func (k Kind) IsValid() bool {
	switch k {
	case KindCar, KindBike, KindEV:
		return true
	}
	return false
}

// String returns the config/file identifier of the kind.
func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindBike:
		return "bike"
	case KindEV:
		return "ev"
	default:
		return "unknown"
	}
}

// MenuLabel returns the label shown in the vehicle selection menu.
func (k Kind) MenuLabel() string {
	switch k {
	case KindCar:
		return "Petrol Car"
	case KindBike:
		return "Bike"
	case KindEV:
		return "Electric Vehicle"
	default:
		return "Unknown"
	}
}

// ParamLabels returns the prompts for the two numeric parameters of the kind.
func (k Kind) ParamLabels() (first, second string) {
	if k == KindEV {
		return "Enter range per full charge (km): ", "Enter cost per full charge"
	}
	return "Enter mileage (km/l): ", "Enter fuel price per litre"
}

// ParseKind accepts "car", "bike", "ev" (case-insensitive) or the menu numbers.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car", "petrol", "petrol_car", "1":
		return KindCar, nil
	case "bike", "2":
		return KindBike, nil
	case "ev", "electric", "electric_vehicle", "3":
		return KindEV, nil
	}
	return 0, fmt.Errorf("unknown vehicle kind %q", s)
}

// New builds a vehicle of the given kind. For Car and Bike the parameters are
// mileage (km/l) and fuel price per litre; for EV they are range per charge (km)
// and cost per charge.
func New(kind Kind, first, second float64) (Vehicle, error) {
	switch kind {
	case KindCar:
		return NewCar(first, second), nil
	case KindBike:
		return NewBike(first, second), nil
	case KindEV:
		return NewElectricVehicle(first, second), nil
	}
	return nil, fmt.Errorf("unsupported vehicle kind: %d", kind)
}

// litreCost is the combustion formula shared by Car and Bike.
func litreCost(distanceKm, mileageKmPerLitre, fuelPricePerLitre float64) float64 {
	if mileageKmPerLitre <= 0 {
		return 0
	}
	litres := distanceKm / mileageKmPerLitre
	return nonNegative(litres * fuelPricePerLitre)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// Car is a petrol car.
type Car struct {
	MileageKmPerLitre float64
	FuelPricePerLitre float64
}

// NewCar creates a petrol car.
func NewCar(mileageKmPerLitre, fuelPricePerLitre float64) *Car {
	return &Car{MileageKmPerLitre: mileageKmPerLitre, FuelPricePerLitre: fuelPricePerLitre}
}

func (c *Car) Name() string { return "Petrol Car" }
func (c *Car) Kind() Kind   { return KindCar }

// FuelCost returns (distance / mileage) * price.
func (c *Car) FuelCost(distanceKm float64) float64 {
	return litreCost(distanceKm, c.MileageKmPerLitre, c.FuelPricePerLitre)
}

// Bike is a motorbike. Same formula as Car.
type Bike struct {
	MileageKmPerLitre float64
	FuelPricePerLitre float64
}

// NewBike creates a bike.
func NewBike(mileageKmPerLitre, fuelPricePerLitre float64) *Bike {
	return &Bike{MileageKmPerLitre: mileageKmPerLitre, FuelPricePerLitre: fuelPricePerLitre}
}

func (b *Bike) Name() string { return "Bike" }
func (b *Bike) Kind() Kind   { return KindBike }

// FuelCost returns (distance / mileage) * price.
func (b *Bike) FuelCost(distanceKm float64) float64 {
	return litreCost(distanceKm, b.MileageKmPerLitre, b.FuelPricePerLitre)
}

// ElectricVehicle pays per full charge.
type ElectricVehicle struct {
	RangePerChargeKm float64
	CostPerCharge    float64
}

// NewElectricVehicle creates an electric vehicle.
func NewElectricVehicle(rangePerChargeKm, costPerCharge float64) *ElectricVehicle {
	return &ElectricVehicle{RangePerChargeKm: rangePerChargeKm, CostPerCharge: costPerCharge}
}

func (e *ElectricVehicle) Name() string { return "EV" }
func (e *ElectricVehicle) Kind() Kind   { return KindEV }

// FuelCost returns ceil(distance / range) * costPerCharge.
func (e *ElectricVehicle) FuelCost(distanceKm float64) float64 {
	if e.RangePerChargeKm <= 0 || distanceKm <= 0 {
		return 0
	}
	charges := math.Ceil(distanceKm / e.RangePerChargeKm)
	return nonNegative(charges * e.CostPerCharge)
}

// Verify the concrete types implement Vehicle.
var (
	_ Vehicle = (*Car)(nil)
	_ Vehicle = (*Bike)(nil)
	_ Vehicle = (*ElectricVehicle)(nil)
)
