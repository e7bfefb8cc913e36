package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/grove/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted menu item style
	MenuItemActive lipgloss.Style
	// MenuItemDisabled is the disabled menu item style
	MenuItemDisabled lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// MenuHeader is the style for menu section headers
	MenuHeader lipgloss.Style
	// Label is the right-aligned form label style
	Label lipgloss.Style
	// LabelFocused marks the form field with focus
	LabelFocused lipgloss.Style
	// Error is the inline validation message style
	Error lipgloss.Style
	// Done is the checked subtask style
	Done lipgloss.Style
	// Banner is the celebration text in info popups
	Banner lipgloss.Style
}

// New creates overlay styles for the active theme
func New() *Styles {
	theme := styles.Active()

	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(styles.Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		MenuHeader: lipgloss.NewStyle().
			Foreground(styles.Subtext1).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(styles.Teal).
			Width(10).
			Align(lipgloss.Right),

		LabelFocused: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Width(10).
			Align(lipgloss.Right).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(styles.Red),

		Done: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Strikethrough(true),

		Banner: lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true),
	}
}
