package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/grove/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	Theme Theme

	// Page chrome
	Header       lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	SectionTitle lipgloss.Style
	Empty        lipgloss.Style

	// Rows
	Row        lipgloss.Style
	RowActive  lipgloss.Style
	RowPending lipgloss.Style
	Cursor     lipgloss.Style
	Muted      lipgloss.Style
	Category   lipgloss.Style
	Overdue    lipgloss.Style
	Checkbox   lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Rewards
	Droplet     lipgloss.Style
	DropletUsed lipgloss.Style
	Tree        lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance for the active theme
func New() *Styles {
	return NewForTheme(Active())
}

// NewForTheme creates a new Styles instance for the given theme
func NewForTheme(theme Theme) *Styles {
	return &Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(Subtext0).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 2),

		SectionTitle: lipgloss.NewStyle().
			Foreground(Subtext1).
			Bold(true).
			MarginTop(1),

		Empty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true).
			Padding(0, 2),

		Row: lipgloss.NewStyle().
			Foreground(Text),

		RowActive: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0).
			Bold(true),

		RowPending: lipgloss.NewStyle().
			Foreground(Overlay0).
			Strikethrough(true),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(Overlay1),

		Category: lipgloss.NewStyle().
			Foreground(Teal),

		Overdue: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(Green),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Droplet: lipgloss.NewStyle().
			Foreground(Sky),

		DropletUsed: lipgloss.NewStyle().
			Foreground(Surface2),

		Tree: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// PriorityBadge returns the badge style for a priority
func (s *Styles) PriorityBadge(p domain.Priority) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Base).
		Background(s.Theme.PriorityColor(int(p))).
		Padding(0, 1).
		Bold(true)
}
