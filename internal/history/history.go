// Package history appends trip summaries to a plain-text log and reads it back.
//
// DESIGN: The log is append-only and human-readable. Every save opens the
// file, writes one fixed-format block and closes it again:
//
//	Trip: <name>
//	Vehicle: <vehicle name>
//	Days: <n>
//	Options: <description>
//	Total Cost: <total, 2 decimals>
//	------------------------------
//
// Reading returns the raw lines; nothing is parsed back into structures.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/tripwise/trip-estimator/internal/costs"
)

// Separator closes every trip block.
const Separator = "------------------------------"

var (
	// ErrPersistence wraps any failure to write or read the log.
	ErrPersistence = errors.New("history persistence failed")

	// ErrNoHistory is returned by Lines when the log file does not exist.
	ErrNoHistory = errors.New("no history file found")
)

// Entry is the summary saved for one trip.
type Entry struct {
	TripName    string
	VehicleName string
	Days        int
	Options     string
	Total       float64
}

// EntryFromEstimate builds the log entry of an estimate.
func EntryFromEstimate(est costs.Estimate) Entry {
	return Entry{
		TripName:    est.TripName,
		VehicleName: est.VehicleName,
		Days:        est.Days,
		Options:     est.Options.Describe(),
		Total:       est.Total,
	}
}

// Lines returns the block lines of the entry, separator included.
func (e Entry) Lines() []string {
	return []string{
		"Trip: " + singleLine(e.TripName),
		"Vehicle: " + singleLine(e.VehicleName),
		fmt.Sprintf("Days: %d", e.Days),
		"Options: " + singleLine(e.Options),
		fmt.Sprintf("Total Cost: %.2f", e.Total),
		Separator,
	}
}

// singleLine replaces control characters with spaces so a value cannot
// break the fixed block layout.
func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// Store is the append-only trip log at Path.
type Store struct {
	path string
}

// NewStore creates a store for the log file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the log file path.
func (s *Store) Path() string {
	return s.path
}

// Append writes one entry block to the end of the log, creating the file
// and its directory when needed.
func (s *Store) Append(e Entry) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range e.Lines() {
		_, _ = w.WriteString(line)
		_ = w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	log.Debug().Str("path", s.path).Str("trip", e.TripName).Msg("history: trip appended")
	return nil
}

// Lines returns every line of the log. A missing file yields ErrNoHistory;
// an empty file yields no lines and no error.
func (s *Store) Lines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoHistory
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return lines, nil
}

// WriteTo copies the log line by line to w.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	lines, err := s.Lines()
	if err != nil {
		return 0, err
	}
	var n int64
	for _, line := range lines {
		written, err := fmt.Fprintln(w, line)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}
