// Package report renders a cost estimate for the console or as JSON.
//
// Both renderings list the breakdown in pipeline evaluation order. The JSON
// document is assembled with sjson so keys and items keep that order instead
// of being sorted by a map encoder.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/tripwise/trip-estimator/internal/costs"
)

const ruleWidth = 46

// Text writes the trip summary block.
func Text(w io.Writer, est costs.Estimate, currency string) error {
	money := func(v float64) string {
		if currency == "" {
			return fmt.Sprintf("%.2f", v)
		}
		return fmt.Sprintf("%s %.2f", currency, v)
	}

	var b strings.Builder
	b.WriteString("\n================ TRIP SUMMARY ================\n")
	fmt.Fprintf(&b, "Trip Name : %s\n", est.TripName)
	fmt.Fprintf(&b, "Vehicle   : %s\n", est.VehicleName)
	fmt.Fprintf(&b, "Days      : %d\n", est.Days)
	fmt.Fprintf(&b, "Options   : %s\n", est.Options.Describe())
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for _, item := range est.Breakdown {
		fmt.Fprintf(&b, "%-20s : %s\n", item.Name, money(item.Amount))
	}
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	fmt.Fprintf(&b, "Total Trip Cost       : %s\n", money(est.Total))
	fmt.Fprintf(&b, "(Check - recursive sum: %s)\n", money(est.CrossCheck))
	fmt.Fprintf(&b, "Avg cost per day      : %s\n", money(est.AveragePerDay()))
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON returns the estimate as a JSON document. Amounts are rounded to
// two decimals. id is omitted when empty.
func JSON(est costs.Estimate, id string) ([]byte, error) {
	doc := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}
	setRaw := func(path, raw string) {
		if err != nil {
			return
		}
		doc, err = sjson.SetRaw(doc, path, raw)
	}

	if id != "" {
		set("estimate_id", id)
	}
	set("trip", est.TripName)
	set("vehicle", est.VehicleName)
	set("days", est.Days)
	set("options", est.Options.Describe())
	setRaw("breakdown", "[]")
	for _, line := range est.Breakdown {
		item, itemErr := lineItemJSON(line)
		if itemErr != nil {
			return nil, itemErr
		}
		setRaw("breakdown.-1", item)
	}
	set("total", round2(est.Total))
	set("recursive_check", round2(est.CrossCheck))
	set("average_per_day", round2(est.AveragePerDay()))

	if err != nil {
		return nil, fmt.Errorf("failed to build report json: %w", err)
	}
	return []byte(doc), nil
}

func lineItemJSON(item costs.LineItem) (string, error) {
	raw, err := sjson.Set("{}", "name", item.Name)
	if err != nil {
		return "", err
	}
	return sjson.Set(raw, "amount", round2(item.Amount))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
