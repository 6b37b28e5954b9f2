package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tripwise/trip-estimator/internal/config"
	"github.com/tripwise/trip-estimator/internal/tui"
)

// setupLogging installs the global zerolog logger. Logs go to cfg.Output when
// set, otherwise to stderr. debug forces the debug level. The returned func
// closes the log file, if any.
func setupLogging(cfg config.LoggingConfig, debug bool, stderr io.Writer) (func(), error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	out := stderr
	closeFn := func() {}
	if cfg.Output != "" {
		if dir := filepath.Dir(cfg.Output); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return closeFn, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		// #nosec G304 -- log path from user config
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    !tui.IsTerminal(out),
	}).With().Timestamp().Logger()

	return closeFn, nil
}
