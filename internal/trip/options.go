package trip

import "strings"

// Options is a bit-set of optional activities. Flags are independent; any
// combination from 0 to 7 is valid.
type Options uint8

const (
	Sightseeing Options = 1 << iota // 0001
	Shopping                        // 0010
	LuxuryStay                      // 0100
)

// AllOptions lists the flags in their fixed display order.
var AllOptions = []Options{Sightseeing, Shopping, LuxuryStay}

// Has reports whether every flag in f is set.
func (o Options) Has(f Options) bool {
	return o&f == f && f != 0
}

// With returns o with f set.
func (o Options) With(f Options) Options {
	return o | f
}

// Label returns the display label of a single flag.
func (o Options) Label() string {
	switch o {
	case Sightseeing:
		return "Sightseeing"
	case Shopping:
		return "Shopping"
	case LuxuryStay:
		return "Luxury stay"
	default:
		return ""
	}
}

// Labels returns the labels of the set flags in fixed order.
func (o Options) Labels() []string {
	var labels []string
	for _, f := range AllOptions {
		if o.Has(f) {
			labels = append(labels, f.Label())
		}
	}
	return labels
}

// Describe returns a comma-joined list of active flags, or "None".
func (o Options) Describe() string {
	labels := o.Labels()
	if len(labels) == 0 {
		return "None"
	}
	return strings.Join(labels, ", ")
}

// ParseOption maps a config/file identifier to its flag.
func ParseOption(s string) (Options, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sightseeing":
		return Sightseeing, true
	case "shopping":
		return Shopping, true
	case "luxury_stay", "luxury-stay", "luxury":
		return LuxuryStay, true
	}
	return 0, false
}
