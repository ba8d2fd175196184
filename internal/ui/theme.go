// Package ui provides terminal feedback for long-running steps: an animated
// spinner on interactive terminals and plain log lines everywhere else.
package ui

import "os"

// ThemeConfig selects how the theme is built.
type ThemeConfig struct {
	NoColor bool   // disable all color output
	Mode    string // "dark" or "light"; empty means dark
}

// Colors holds the hex colors used by UI components.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Muted     string
}

// Theme is the visual configuration shared by UI components.
type Theme struct {
	NoColor bool
	Colors  Colors
}

var darkColors = Colors{
	Primary:   "#7D56F4",
	Secondary: "#38BDF8",
	Success:   "#22C55E",
	Warning:   "#F59E0B",
	Muted:     "#9CA3AF",
}

var lightColors = Colors{
	Primary:   "#5B21B6",
	Secondary: "#0369A1",
	Success:   "#15803D",
	Warning:   "#B45309",
	Muted:     "#4B5563",
}

// NewTheme builds a Theme. Color is also disabled when NO_COLOR is set.
func NewTheme(cfg ThemeConfig) *Theme {
	colors := darkColors
	if cfg.Mode == "light" {
		colors = lightColors
	}
	_, noColorEnv := os.LookupEnv("NO_COLOR")
	return &Theme{
		NoColor: cfg.NoColor || noColorEnv,
		Colors:  colors,
	}
}
