// Package prompt reads validated values from a line-oriented console.
//
// DESIGN: Parsing and retrying are separate. The Parse* functions validate
// one raw line and return a typed error; Console.Ask* loops call them and
// re-prompt until a valid value arrives or input ends.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput is returned when a line is not a number.
	ErrInvalidInput = errors.New("invalid number")

	// ErrNegative is returned when a number must be >= 0.
	ErrNegative = errors.New("value cannot be negative")

	// ErrOutOfRange is returned when a choice is outside the offered range.
	ErrOutOfRange = errors.New("choice out of range")
)

// ParseNonNegative parses a finite float >= 0.
func ParseNonNegative(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidInput
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return v, nil
}

// ParseInt parses a base-10 integer.
func ParseInt(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidInput
	}
	return v, nil
}

// ParseChoice parses an integer within [lo, hi].
func ParseChoice(raw string, lo, hi int) (int, error) {
	v, err := ParseInt(raw)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return v, ErrOutOfRange
	}
	return v, nil
}

// IsYes reports whether the answer is "y" (case-insensitive).
func IsYes(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "y")
}

// Console reads answers from in and writes prompts to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Printf writes formatted text to the console.
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the console.
func (c *Console) Println(args ...any) {
	_, _ = fmt.Fprintln(c.out, args...)
}

// Ask prints the prompt and returns the next line without its line ending.
// io.EOF is returned only when input is exhausted and no text was read.
func (c *Console) Ask(prompt string) (string, error) {
	c.Printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskNonNegative re-prompts until a number >= 0 is entered.
func (c *Console) AskNonNegative(prompt string) (float64, error) {
	for {
		line, err := c.Ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := ParseNonNegative(line)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, ErrNegative):
			c.Println("Value cannot be negative. Try again.")
		default:
			c.Println("Invalid number. Try again.")
		}
	}
}

// AskYesNo asks a y/n question. Anything other than "y" is no.
func (c *Console) AskYesNo(prompt string) (bool, error) {
	line, err := c.Ask(prompt)
	if err != nil {
		return false, err
	}
	return IsYes(line), nil
}
