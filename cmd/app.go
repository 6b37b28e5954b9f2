package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tripwise/trip-estimator/internal/config"
	"github.com/tripwise/trip-estimator/internal/costs"
	"github.com/tripwise/trip-estimator/internal/history"
	"github.com/tripwise/trip-estimator/internal/prompt"
	"github.com/tripwise/trip-estimator/internal/trip"
	"github.com/tripwise/trip-estimator/internal/tui"
)

// app wires the configured pipeline, history store and console together.
type app struct {
	cfg      *config.Config
	console  *prompt.Console
	printer  *tui.Printer
	store    *history.Store
	pipeline *costs.Pipeline
	out      io.Writer
}

func newApp(cfg *config.Config, in io.Reader, out io.Writer) (*app, error) {
	pipeline, err := cfg.Pipeline()
	if err != nil {
		return nil, fmt.Errorf("failed to build cost pipeline: %w", err)
	}
	log.Debug().Strs("components", pipeline.Names()).Msg("costs: pipeline ready")

	return &app{
		cfg:      cfg,
		console:  prompt.NewConsole(in, out),
		printer:  tui.NewPrinter(out),
		store:    history.NewStore(cfg.History.Path),
		pipeline: pipeline,
		out:      out,
	}, nil
}

// estimate runs the pipeline over ctx and tags the result with a fresh id.
func (a *app) estimate(ctx *trip.Context) (costs.Estimate, string) {
	id := uuid.NewString()
	est := a.pipeline.Estimate(ctx)
	log.Info().
		Str("estimate_id", id).
		Str("trip", est.TripName).
		Str("vehicle", est.VehicleName).
		Int("days", est.Days).
		Float64("total", est.Total).
		Msg("estimate: computed")
	return est, id
}

// save appends the estimate to the history log and reports the outcome.
func (a *app) save(est costs.Estimate, id string) {
	if err := a.store.Append(history.EntryFromEstimate(est)); err != nil {
		log.Warn().Err(err).Str("estimate_id", id).Msg("history: append failed")
		a.printer.Error("Unable to save trip data: " + err.Error())
		return
	}
	a.printer.Success("Trip summary saved to file: " + a.store.Path())
}

// currencyLabel returns " (₹)" style prompt suffixes, or "" without a currency.
func (a *app) currencyLabel() string {
	if a.cfg.Report.Currency == "" {
		return ""
	}
	return " (" + a.cfg.Report.Currency + ")"
}
