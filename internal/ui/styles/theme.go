package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Yellow = lipgloss.Color("#eed49f")
	Green  = lipgloss.Color("#a6da95")
	Teal   = lipgloss.Color("#8bd5ca")
	Blue   = lipgloss.Color("#8aadf4")
	Red    = lipgloss.Color("#ed8796")
	Sky    = lipgloss.Color("#91d7e3")
)

// Theme is an accent palette layered over the base colors. Priority colors
// come from the theme so color-blind and monochrome variants stay legible.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	High    lipgloss.Color
	Medium  lipgloss.Color
	Low     lipgloss.Color
}

// Themes lists the built-in themes in menu order
var Themes = []Theme{
	{Name: "orange", Primary: "#ff9f1a", High: "#c62828", Medium: "#d9812e", Low: "#258725"},
	{Name: "green", Primary: "#43a047", High: "#c62828", Medium: "#fb8c00", Low: "#1b5e20"},
	{Name: "blue", Primary: "#1e88e5", High: "#e53935", Medium: "#ffb300", Low: "#388e3c"},
	{Name: "purple", Primary: "#cd12a8", High: "#c62828", Medium: "#ff8f00", Low: "#558b2f"},
	{Name: "color-blind", Primary: "#000000", High: "#ec0258", Medium: "#fb9a08", Low: "#025dad"},
	{Name: "monochrome", Primary: "#202020", High: "#202020", Medium: "#202020", Low: "#202020"},
}

// ThemeNames returns the names of the built-in themes
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// LookupTheme finds a built-in theme by name
func LookupTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
}

// NextTheme returns the theme after name, wrapping around
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

var active = Themes[0]

// SetTheme switches the theme used by New and by overlay styles
func SetTheme(t Theme) {
	active = t
}

// Active returns the current theme
func Active() Theme {
	return active
}

// PriorityColor maps a priority value (0-3) to a color in the theme
func (t Theme) PriorityColor(priority int) lipgloss.Color {
	switch priority {
	case 3:
		return t.High
	case 2:
		return t.Medium
	case 1:
		return t.Low
	default:
		return Overlay0
	}
}
