package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
const (
	ColorGreen  = "42"
	ColorCyan   = "44"
	ColorRed    = "196"
	ColorYellow = "220"
	ColorGray   = "245"
)

// Status markers printed in front of messages.
const (
	MarkSuccess = "✓"
	MarkError   = "✗"
	MarkWarning = "⚠"
)

// Styles holds the text styles used for CLI output.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Accent  lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorCyan)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// NoColorStyles returns unstyled components for plain output.
func NoColorStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Accent:  lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
	}
}

// StylesFor picks colored styles when w is a terminal and NO_COLOR is unset.
func StylesFor(w io.Writer) Styles {
	if IsTTY(w) && !DetectNoColor() {
		return DefaultStyles()
	}
	return NoColorStyles()
}

// Printer writes marked status lines to an output stream.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a printer whose styling follows StylesFor(w).
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: StylesFor(w)}
}

// Accent renders s in the accent style, for names and paths inside messages.
func (p *Printer) Accent(s string) string {
	return p.styles.Accent.Render(s)
}

// Header prints a bold heading line.
func (p *Printer) Header(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Header.Render(fmt.Sprintf(format, args...)))
}

// Success prints "✓ message".
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Success.Render(MarkSuccess), fmt.Sprintf(format, args...))
}

// Warn prints "⚠ message" in the warning color.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Warning.Render(MarkWarning+" "+fmt.Sprintf(format, args...)))
}

// Error prints "✗ message" in the error color.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Error.Render(MarkError+" "+fmt.Sprintf(format, args...)))
}

// Note prints a plain line in the warning color without a marker.
func (p *Printer) Note(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Warning.Render(fmt.Sprintf(format, args...)))
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
