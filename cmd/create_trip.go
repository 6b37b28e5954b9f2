package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tripwise/trip-estimator/internal/config"
	"github.com/tripwise/trip-estimator/internal/prompt"
	"github.com/tripwise/trip-estimator/internal/report"
	"github.com/tripwise/trip-estimator/internal/trip"
	"github.com/tripwise/trip-estimator/internal/vehicle"
)

// createTrip collects one trip interactively, prints its summary and saves it.
// Invalid input is handled in place; only a read failure (including EOF) is
// returned.
func (a *app) createTrip() error {
	name, err := a.console.Ask("Enter trip name: ")
	if err != nil {
		return err
	}

	raw, err := a.console.Ask("Number of travel days: ")
	if err != nil {
		return err
	}
	days, err := prompt.ParseInt(raw)
	if err != nil {
		a.console.Println("Invalid numeric input. Trip creation cancelled.")
		return nil
	}
	if days <= 0 {
		a.console.Println("Number of days must be positive.")
		return nil
	}
	if days > config.MaxTripDays {
		a.console.Printf("Number of days is too large (maximum %d).\n", config.MaxTripDays)
		return nil
	}

	v, err := a.chooseVehicle()
	if err != nil {
		return err
	}

	options, err := a.collectOptions()
	if err != nil {
		return err
	}

	var segments []trip.Segment
	for day := 1; day <= days; day++ {
		seg, err := a.askSegment(day)
		if err != nil {
			return err
		}
		segments = append(segments, seg)
	}

	ctx, err := trip.NewContext(name, v, segments, options)
	if err != nil {
		a.printer.Error("Unable to build trip: " + err.Error())
		return nil
	}

	est, id := a.estimate(ctx)
	if err := report.Text(a.out, est, a.cfg.Report.Currency); err != nil {
		log.Warn().Err(err).Str("estimate_id", id).Msg("report: write failed")
	}
	a.save(est, id)
	return nil
}

// chooseVehicle shows the vehicle menu until a valid choice is made and then
// asks for the two rate parameters of that kind.
func (a *app) chooseVehicle() (vehicle.Vehicle, error) {
	for {
		a.console.Println("\nChoose vehicle type:")
		for _, k := range vehicle.AllKinds() {
			a.console.Printf("%d. %s\n", int(k), k.MenuLabel())
		}

		raw, err := a.console.Ask("Enter choice: ")
		if err != nil {
			return nil, err
		}
		choice, err := prompt.ParseChoice(raw, int(vehicle.KindCar), int(vehicle.KindEV))
		if err != nil {
			if errors.Is(err, prompt.ErrOutOfRange) {
				a.console.Println("Invalid choice, try again.")
			} else {
				a.console.Println("Please enter a valid number.")
			}
			continue
		}

		kind := vehicle.Kind(choice)
		firstLabel, secondLabel := kind.ParamLabels()
		first, err := a.console.AskNonNegative(firstLabel)
		if err != nil {
			return nil, err
		}
		second, err := a.console.AskNonNegative(secondLabel + a.currencyLabel() + ": ")
		if err != nil {
			return nil, err
		}
		return vehicle.New(kind, first, second)
	}
}

// collectOptions asks the three y/n questions and returns the option set.
func (a *app) collectOptions() (trip.Options, error) {
	a.console.Println("\nSelect optional activities (y/n):")

	questions := []struct {
		flag   trip.Options
		prompt string
	}{
		{trip.Sightseeing, "  Include sightseeing? "},
		{trip.Shopping, "  Include shopping? "},
		{trip.LuxuryStay, "  Luxury stay? "},
	}

	var options trip.Options
	for _, q := range questions {
		yes, err := a.console.AskYesNo(q.prompt)
		if err != nil {
			return 0, err
		}
		if yes {
			options = options.With(q.flag)
		}
	}
	return options, nil
}

// askSegment collects the four figures for one day.
func (a *app) askSegment(day int) (trip.Segment, error) {
	a.console.Printf("\nDay %d details:\n", day)
	cur := a.currencyLabel()

	distance, err := a.console.AskNonNegative("  Distance travelled (km): ")
	if err != nil {
		return trip.Segment{}, err
	}
	food, err := a.console.AskNonNegative(fmt.Sprintf("  Food cost%s: ", cur))
	if err != nil {
		return trip.Segment{}, err
	}
	stay, err := a.console.AskNonNegative(fmt.Sprintf("  Stay cost%s: ", cur))
	if err != nil {
		return trip.Segment{}, err
	}
	toll, err := a.console.AskNonNegative(fmt.Sprintf("  Toll & parking%s: ", cur))
	if err != nil {
		return trip.Segment{}, err
	}
	return trip.NewSegment(day, distance, food, stay, toll)
}
