package main

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/tripwise/trip-estimator/internal/costs"
	"github.com/tripwise/trip-estimator/internal/history"
	"github.com/tripwise/trip-estimator/internal/report"
	"github.com/tripwise/trip-estimator/internal/tripfile"
)

// runEstimateFile estimates the trip described in a YAML file. With asJSON
// the report is a JSON document and nothing else is written to stdout.
func (a *app) runEstimateFile(path string, asJSON, save bool) error {
	f, err := tripfile.Load(path)
	if err != nil {
		return err
	}
	ctx, err := f.Context()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	est, id := a.estimate(ctx)

	if asJSON {
		data, err := report.JSON(est, id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.out, string(data)); err != nil {
			return err
		}
		if save {
			if err := a.store.Append(history.EntryFromEstimate(est)); err != nil {
				return err
			}
			log.Info().Str("estimate_id", id).Str("path", a.store.Path()).Msg("history: estimate saved")
		}
		return nil
	}

	a.printer.Step("Estimating trip from " + path)
	if err := report.Text(a.out, est, a.cfg.Report.Currency); err != nil {
		return err
	}
	if save {
		a.save(est, id)
	}
	return nil
}

// listComponents prints the pipeline in evaluation order and the registered extras.
func (a *app) listComponents() {
	a.printer.Header("COST COMPONENTS")
	if a.cfg.Source != "" {
		a.printer.Info("Config: " + a.cfg.Source)
	} else {
		a.printer.Info("Config: built-in defaults")
	}

	registry := costs.DefaultRegistry()
	for _, id := range a.cfg.Components.Extra {
		if _, ok := registry.Get(id); !ok {
			a.printer.Warn("Unknown extra component ignored: " + id)
		}
	}

	a.console.Println()
	a.console.Println("Evaluation order:")
	for i, name := range a.pipeline.Names() {
		a.console.Printf("  %d. %s\n", i+1, name)
	}

	a.console.Println()
	a.console.Println("Registered extras:")
	for _, id := range registry.IDs() {
		state := "disabled"
		if slices.Contains(a.cfg.Components.Extra, id) {
			state = "enabled"
		}
		a.console.Printf("  %-20s %s\n", id, state)
	}

	a.console.Println()
	a.console.Printf("Option charges per day: sightseeing %.2f, shopping %.2f, luxury stay %.2f\n",
		a.cfg.Options.SightseeingPerDay, a.cfg.Options.ShoppingPerDay, a.cfg.Options.LuxuryStayPerDay)
}
