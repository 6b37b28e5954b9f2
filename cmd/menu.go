package main

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/tripwise/trip-estimator/internal/history"
	"github.com/tripwise/trip-estimator/internal/prompt"
)

const innovationLine = "Innovation: Intelligent Multi-Parameter Trip Cost Estimator"

func (a *app) printBanner() {
	a.printer.Header("INTELLIGENT TRIP COST ESTIMATOR")
	a.console.Println(innovationLine)
	a.console.Println()
}

// runMenu shows the main menu until the user exits or input ends.
func (a *app) runMenu() {
	a.printBanner()

	for {
		a.console.Println("\nMain Menu")
		a.console.Println("1. Create new Trip Estimation")
		a.console.Println("2. View saved trip history")
		a.console.Println("3. Exit")

		raw, err := a.console.Ask("Enter your choice: ")
		if err != nil {
			a.console.Println()
			if !errors.Is(err, io.EOF) {
				log.Warn().Err(err).Msg("menu: input failed")
			}
			return
		}

		choice, err := prompt.ParseInt(raw)
		if err != nil {
			a.console.Println("Please enter a valid number.")
			continue
		}

		switch choice {
		case 1:
			if err := a.createTrip(); err != nil {
				a.console.Println()
				if !errors.Is(err, io.EOF) {
					log.Warn().Err(err).Msg("menu: trip creation failed")
				}
				return
			}
		case 2:
			a.showHistory()
		case 3:
			a.console.Println("Thank you. Goodbye!")
			return
		default:
			a.console.Println("Invalid choice. Try again.")
		}
	}
}

// showHistory prints the saved log between banner lines.
func (a *app) showHistory() {
	a.console.Println("\n========= SAVED TRIP HISTORY =========")
	n, err := a.store.WriteTo(a.out)
	switch {
	case errors.Is(err, history.ErrNoHistory):
		a.console.Println("No history file found.")
	case errors.Is(err, history.ErrPersistence):
		a.console.Printf("Error reading history: %v\n", err)
	case err != nil:
		log.Warn().Err(err).Msg("history: display failed")
	case n == 0:
		a.console.Println("No trips saved yet.")
	}
	a.console.Println("======================================")
}
