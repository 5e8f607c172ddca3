// Package ui provides terminal styling for sdr CLI output.
package ui

import (
	"io"
	"os"

	"sdr/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ANSI palette matching the classic sdr output: red identifiers, yellow text.
var (
	ColorID   = lipgloss.Color("1")
	ColorText = lipgloss.Color("3")
	ColorOK   = lipgloss.Color("2")
	ColorWarn = lipgloss.Color("214")
)

// Styles holds the rendered styles for one output stream.
type Styles struct {
	ID   lipgloss.Style
	Text lipgloss.Style
	OK   lipgloss.Style
	Warn lipgloss.Style
}

// NewStyles builds styles bound to w. With color false every style renders
// plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		ID:   r.NewStyle().Foreground(ColorID),
		Text: r.NewStyle().Foreground(ColorText),
		OK:   r.NewStyle().Foreground(ColorOK),
		Warn: r.NewStyle().Foreground(ColorWarn),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ShouldColor decides whether output to w is coloured for the given mode
// ("auto", "always" or "never"). Auto colours terminals unless NO_COLOR is set.
func ShouldColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv(config.EnvNoColor) != "" {
		return false
	}
	return IsTerminal(w)
}
