// Package tripfile loads a trip description from YAML for non-interactive estimates.
//
// Example:
//
//	name: Goa
//	vehicle:
//	  kind: car                # car | bike | ev
//	  mileage_km_per_litre: 15 # car, bike
//	  fuel_price_per_litre: 100
//	  range_per_charge_km: 0   # ev
//	  cost_per_charge: 0
//	options: [luxury_stay]     # sightseeing | shopping | luxury_stay
//	days:
//	  - {distance_km: 150, food: 500, stay: 1000, toll: 50}
//	  - {distance_km: 100, food: 400, stay: 1000, toll: 30}
package tripfile

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tripwise/trip-estimator/internal/config"
	"github.com/tripwise/trip-estimator/internal/trip"
	"github.com/tripwise/trip-estimator/internal/vehicle"
)

// File is the YAML trip description.
type File struct {
	Name    string      `yaml:"name" validate:"required,singleline"`
	Vehicle VehicleSpec `yaml:"vehicle"`
	Options []string    `yaml:"options" validate:"dive,oneof=sightseeing shopping luxury_stay"`
	Days    []DaySpec   `yaml:"days" validate:"required,min=1,max=3650,dive"`
}

// VehicleSpec describes the vehicle and its two rate parameters.
type VehicleSpec struct {
	Kind              string  `yaml:"kind" validate:"required,oneof=car bike ev"`
	MileageKmPerLitre float64 `yaml:"mileage_km_per_litre" validate:"gte=0"`
	FuelPricePerLitre float64 `yaml:"fuel_price_per_litre" validate:"gte=0"`
	RangePerChargeKm  float64 `yaml:"range_per_charge_km" validate:"gte=0"`
	CostPerCharge     float64 `yaml:"cost_per_charge" validate:"gte=0"`
}

// DaySpec is one day's figures.
type DaySpec struct {
	DistanceKm float64 `yaml:"distance_km" validate:"gte=0"`
	Food       float64 `yaml:"food" validate:"gte=0"`
	Stay       float64 `yaml:"stay" validate:"gte=0"`
	Toll       float64 `yaml:"toll" validate:"gte=0"`
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator, reporting fields by YAML name.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("singleline", validateSingleLine)
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateSingleLine rejects values containing control characters such as
// line breaks.
func validateSingleLine(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}

// Parse decodes and validates a trip file. ${VAR} references are expanded.
func Parse(data []byte) (*File, error) {
	var f File
	expanded := config.ExpandEnvWithDefaults(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, fmt.Errorf("failed to parse trip file: %w", err)
	}
	f.normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the trip file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read trip file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate checks the struct tags and reports every failing field.
func (f *File) Validate() error {
	err := getValidator().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid trip file: %s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "File.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s allows at most %s entries", field, fe.Param())
	case "singleline":
		return field + " must be a single line without control characters"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

func (f *File) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Vehicle.Kind = strings.ToLower(strings.TrimSpace(f.Vehicle.Kind))
	for i, o := range f.Options {
		f.Options[i] = strings.ToLower(strings.TrimSpace(o))
	}
}

// OptionFlags returns the options as a bit-set.
func (f *File) OptionFlags() trip.Options {
	var opts trip.Options
	for _, o := range f.Options {
		if flag, ok := trip.ParseOption(o); ok {
			opts = opts.With(flag)
		}
	}
	return opts
}

// BuildVehicle creates the vehicle described by the file.
func (f *File) BuildVehicle() (vehicle.Vehicle, error) {
	kind, err := vehicle.ParseKind(f.Vehicle.Kind)
	if err != nil {
		return nil, err
	}
	if kind == vehicle.KindEV {
		return vehicle.New(kind, f.Vehicle.RangePerChargeKm, f.Vehicle.CostPerCharge)
	}
	return vehicle.New(kind, f.Vehicle.MileageKmPerLitre, f.Vehicle.FuelPricePerLitre)
}

// Context builds the trip context described by the file.
func (f *File) Context() (*trip.Context, error) {
	v, err := f.BuildVehicle()
	if err != nil {
		return nil, err
	}
	segments := make([]trip.Segment, 0, len(f.Days))
	for i, d := range f.Days {
		s, err := trip.NewSegment(i+1, d.DistanceKm, d.Food, d.Stay, d.Toll)
		if err != nil {
			return nil, err
		}
		segments = append(segments, s)
	}
	return trip.NewContext(f.Name, v, segments, f.OptionFlags())
}
