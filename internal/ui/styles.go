package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")

	lineStyle    = lipgloss.NewStyle().Foreground(ColorWhite)
	tagStyle     = lipgloss.NewStyle().Foreground(ColorYellow)
	warningStyle = lipgloss.NewStyle().Foreground(ColorRed)
	promptStyle  = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(ColorDarkGray)
	keyStyle     = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
)

// ColorMode is the tri-state color preference.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps the accepted spellings (ours and git's color.ui
// values) onto a ColorMode. ok is false for anything unrecognized.
func ParseColorMode(s string) (mode ColorMode, ok bool) {
	switch s {
	case "always":
		return ColorAlways, true
	case "never", "false", "off", "none":
		return ColorNever, true
	case "auto", "true", "on":
		return ColorAuto, true
	}
	return ColorAuto, false
}

// ResolveColorMode picks the first recognized preference: command-line
// flag, then the repository's color.ui, then the user config file.
// Everything unset or unrecognized falls through to auto.
func ResolveColorMode(flag, gitUI, cfgMode string) ColorMode {
	for _, s := range []string{flag, gitUI, cfgMode} {
		if s == "" {
			continue
		}
		if mode, ok := ParseColorMode(s); ok {
			return mode
		}
	}
	return ColorAuto
}

// ApplyColorMode forces the lipgloss color profile for always/never. Auto
// keeps lipgloss's own detection, which downgrades to plain text when
// stdout is not a terminal.
func ApplyColorMode(mode ColorMode) {
	switch mode {
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
