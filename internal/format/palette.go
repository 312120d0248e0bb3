package format

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/logster-sh/logster/internal/config"
)

// Palette holds one pre-built style per rendering role. Styles are bound
// to a renderer with a forced color profile rather than a detected one:
// TrueColor when coloring, Ascii when no_color. Under Ascii every style
// renders its text bare, so plain output is exactly the colored output
// with the escape sequences removed.
type Palette struct {
	Time    lipgloss.Style
	Level   lipgloss.Style
	File    lipgloss.Style
	Origin  lipgloss.Style
	Message lipgloss.Style

	VerboseKey         lipgloss.Style
	VerboseValue       lipgloss.Style
	VerbosePunctuation lipgloss.Style

	// Passthrough level tokens in non-JSON lines.
	Warn  lipgloss.Style
	Error lipgloss.Style
}

// NewPalette builds the role styles for one resolved configuration.
func NewPalette(cfg config.Resolved) Palette {
	profile := termenv.TrueColor
	if cfg.NoColor {
		profile = termenv.Ascii
	}
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(profile))
	// lipgloss re-detects the profile from the environment unless it is
	// set explicitly; WithProfile alone only configures the termenv output.
	r.SetColorProfile(profile)

	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	faint := func(c string) lipgloss.Style {
		return fg(c).Faint(true)
	}

	return Palette{
		Time:    fg(cfg.Colors.Time),
		Level:   fg(cfg.Colors.Level),
		File:    fg(cfg.Colors.File),
		Origin:  fg(cfg.Colors.Origin),
		Message: fg(cfg.Colors.Message),

		VerboseKey:         faint(cfg.Colors.VerboseKey),
		VerboseValue:       faint(cfg.Colors.VerboseValue),
		VerbosePunctuation: faint(cfg.Colors.VerbosePunctuation),

		Warn:  fg("3"),
		Error: fg("1"),
	}
}
