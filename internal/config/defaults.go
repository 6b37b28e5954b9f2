// Package config - defaults.go centralizes magic numbers and default values.
//
// DESIGN: Defaults used by the config loader and the CLI are defined here.
// Cost defaults (option rates, buffer percentage) belong to package costs.
package config

// =============================================================================
// HISTORY LOG
// =============================================================================

// DefaultHistoryPath is the append-only trip log, relative to the working directory.
const DefaultHistoryPath = "trips_data.txt"

// Option charges and the emergency buffer percentage default to
// costs.DefaultRates and costs.DefaultEmergencyBufferPercent.

// =============================================================================
// INPUT LIMITS
// =============================================================================

// MaxTripDays bounds the day count accepted by the interactive flow.
const MaxTripDays = 3650

// =============================================================================
// LOGGING
// =============================================================================

// DefaultLogLevel keeps diagnostic output out of the interactive console.
const DefaultLogLevel = "warn"

// =============================================================================
// REPORT
// =============================================================================

// DefaultCurrency is printed before every amount in the console report.
const DefaultCurrency = "₹"

// =============================================================================
// FILE LOCATIONS
// =============================================================================

// AppDirName is the directory under ~/.config holding user configuration.
const AppDirName = "trip-estimator"

// LocalConfigFile is the project-local config file name.
const LocalConfigFile = "trip-estimator.yaml"
