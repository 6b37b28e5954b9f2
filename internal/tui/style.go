// Package tui holds console styling helpers.
//
// Colours are only emitted when the target is a terminal and NO_COLOR is unset,
// so piped output and history files stay plain text.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// =============================================================================
// COLOURS
// =============================================================================

const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
	ColorRed    = "\033[0;31m"
	ColorGreen  = "\033[0;32m"
	ColorYellow = "\033[1;33m"
	ColorBlue   = "\033[0;34m"
	ColorCyan   = "\033[0;36m"
)

// DefaultWidth is the width of header rules.
const DefaultWidth = 46

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits in int
}

// Printer writes tagged status lines, coloured when w is a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer for w.
func NewPrinter(w io.Writer) *Printer {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Printer{w: w, color: IsTerminal(w) && !noColor}
}

// Paint wraps text in color when colouring is on.
func (p *Printer) Paint(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + ColorReset
}

func (p *Printer) tagged(color, tag, msg string) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.Paint(color, tag), msg)
}

// Success prints an [OK] line.
func (p *Printer) Success(msg string) { p.tagged(ColorGreen, "[OK]", msg) }

// Info prints an [INFO] line.
func (p *Printer) Info(msg string) { p.tagged(ColorBlue, "[INFO]", msg) }

// Warn prints a [WARN] line.
func (p *Printer) Warn(msg string) { p.tagged(ColorYellow, "[WARN]", msg) }

// Error prints an [ERROR] line.
func (p *Printer) Error(msg string) { p.tagged(ColorRed, "[ERROR]", msg) }

// Step prints a >>> line.
func (p *Printer) Step(msg string) { p.tagged(ColorCyan, ">>>", msg) }

// Header prints a boxed title.
func (p *Printer) Header(title string) {
	rule := strings.Repeat("=", DefaultWidth)
	_, _ = fmt.Fprintln(p.w, p.Paint(ColorBold+ColorCyan, rule))
	_, _ = fmt.Fprintln(p.w, p.Paint(ColorBold+ColorCyan, center(title, DefaultWidth)))
	_, _ = fmt.Fprintln(p.w, p.Paint(ColorBold+ColorCyan, rule))
}

func center(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
