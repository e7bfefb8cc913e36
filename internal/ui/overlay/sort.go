package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/grove/internal/domain"
)

// SortOption represents a sort option with metadata
type SortOption struct {
	Key         string
	Label       string
	Field       domain.SortField
	Description string
}

// SortEditor owns the sort a SortMenu changes
type SortEditor interface {
	GetSort() *domain.Sort
	ToggleSort(field domain.SortField)
	ResetSort()
}

// SortMenu is a menu overlay for sorting configuration
type SortMenu struct {
	editor  SortEditor
	options []SortOption
	styles  *Styles
}

// NewSortMenu creates a new sort menu over editor's sort state
func NewSortMenu(editor SortEditor) *SortMenu {
	return &SortMenu{
		editor: editor,
		styles: New(),
		options: []SortOption{
			{
				Key:         "p",
				Label:       "Priority",
				Field:       domain.SortByPriority,
				Description: "none < low < medium < high",
			},
			{
				Key:         "d",
				Label:       "Due date",
				Field:       domain.SortByDueDate,
				Description: "undated tasks last",
			},
			{
				Key:         "c",
				Label:       "Created",
				Field:       domain.SortByCreated,
				Description: "creation order",
			},
		},
	}
}

// Init initializes the menu
func (m *SortMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SortMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "esc", "q":
		return m, func() tea.Msg { return CloseOverlayMsg{} }

	case "c":
		m.editor.ResetSort()
		return m, m.selected(key)

	case "p", "d":
		for _, opt := range m.options {
			if opt.Key == key {
				// Same key again flips the direction
				m.editor.ToggleSort(opt.Field)
				return m, m.selected(key)
			}
		}
	}

	return m, nil
}

func (m *SortMenu) selected(key string) tea.Cmd {
	current := *m.editor.GetSort()
	return func() tea.Msg {
		return SelectionMsg{Key: key, Value: current}
	}
}

// View renders the menu
func (m *SortMenu) View() string {
	var b strings.Builder

	current := m.editor.GetSort()
	for _, opt := range m.options {
		isActive := current.Field == opt.Field

		keyStyle, labelStyle := m.styles.MenuItem, m.styles.MenuItem
		if isActive {
			keyStyle, labelStyle = m.styles.MenuKey, m.styles.MenuItemActive
		}

		b.WriteString(keyStyle.Render("[" + opt.Key + "]"))
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(opt.Label))
		b.WriteString(" ")
		b.WriteString(m.styles.Footer.Render("(" + opt.Description + ")"))

		if isActive && opt.Field != domain.SortByCreated {
			arrow := "↑"
			if current.Order == domain.SortDesc {
				arrow = "↓"
			}
			b.WriteString(" ")
			b.WriteString(m.styles.MenuItemActive.Render("● " + arrow))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("Press same key to toggle direction • Esc to close"))

	return b.String()
}

// Title returns the overlay title
func (m *SortMenu) Title() string {
	return "Sort"
}

// Size returns the overlay dimensions
func (m *SortMenu) Size() (width, height int) {
	return 60, len(m.options) + 5
}
