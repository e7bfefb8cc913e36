package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/grove/internal/domain"
)

// filterMode represents the current selection mode
type filterMode string

const (
	filterModeNormal   filterMode = "normal"
	filterModeDue      filterMode = "due"
	filterModeCategory filterMode = "category"
)

// dueKeys maps menu keys to due windows
var dueKeys = []struct {
	key    string
	window domain.DueWindow
}{
	{"3", domain.DueIn3Days},
	{"w", domain.DueIn1Week},
	{"m", domain.DueIn1Month},
}

// FilterEditor owns the filter a FilterMenu changes
type FilterEditor interface {
	GetFilter() *domain.Filter
	ToggleDueWithin(w domain.DueWindow)
	ClearDueWithin()
	ToggleCategory(name string)
	ClearFilter()
}

// FilterMenu is a menu overlay for task filtering
type FilterMenu struct {
	editor     FilterEditor
	categories []string
	cursor     int
	styles     *Styles
	mode       filterMode
}

// NewFilterMenu creates a new filter menu over editor's filter and the
// categories that can be chosen
func NewFilterMenu(editor FilterEditor, categories []string) *FilterMenu {
	return &FilterMenu{
		editor:     editor,
		categories: categories,
		styles:     New(),
		mode:       filterModeNormal,
	}
}

// Init initializes the menu
func (m *FilterMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *FilterMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case filterModeDue:
		return m.handleDueMode(keyMsg)
	case filterModeCategory:
		return m.handleCategoryMode(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}

func (m *FilterMenu) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseOverlayMsg{} }

	case "d":
		m.mode = filterModeDue

	case "g":
		if len(m.categories) > 0 {
			m.mode = filterModeCategory
			m.cursor = 0
		}

	case "c":
		m.editor.ClearFilter()
		return m, m.changed("clear")
	}

	return m, nil
}

func (m *FilterMenu) handleDueMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		m.mode = filterModeNormal
		return m, nil
	}

	for _, dk := range dueKeys {
		if dk.key == key {
			m.editor.ToggleDueWithin(dk.window)
			m.mode = filterModeNormal
			return m, m.changed("due")
		}
	}
	if key == "0" {
		m.editor.ClearDueWithin()
		m.mode = filterModeNormal
		return m, m.changed("due")
	}

	return m, nil
}

func (m *FilterMenu) handleCategoryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = filterModeNormal

	case "j", "down":
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "enter", " ":
		m.editor.ToggleCategory(m.categories[m.cursor])
		m.mode = filterModeNormal
		return m, m.changed("category")
	}

	return m, nil
}

func (m *FilterMenu) changed(key string) tea.Cmd {
	current := *m.editor.GetFilter()
	return func() tea.Msg {
		return SelectionMsg{Key: key, Value: current}
	}
}

// View renders the menu
func (m *FilterMenu) View() string {
	var b strings.Builder

	b.WriteString(m.renderDueLine())
	b.WriteString(m.renderCategoryLine())

	b.WriteString(m.styles.Separator.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(m.styles.MenuKey.Render("[c]") + " " + m.styles.MenuItem.Render("Clear all filters"))
	b.WriteString("\n")

	if m.mode == filterModeCategory {
		b.WriteString("\n")
		for i, name := range m.categories {
			style := m.styles.MenuItem
			prefix := "  "
			if i == m.cursor {
				style = m.styles.MenuItemActive
				prefix = "> "
			}
			mark := " "
			if m.editor.GetFilter().Category == name {
				mark = "●"
			}
			b.WriteString(style.Render(fmt.Sprintf("%s[%s] %s", prefix, mark, name)))
			b.WriteString("\n")
		}
	}

	switch m.mode {
	case filterModeDue:
		b.WriteString(m.styles.Footer.Render("Press key to toggle window, 0 for any, Esc to cancel"))
	case filterModeCategory:
		b.WriteString(m.styles.Footer.Render("j/k: move • Enter: toggle • Esc: cancel"))
	default:
		b.WriteString(m.styles.Footer.Render("d: due date • g: category • Esc to close"))
	}

	return b.String()
}

func (m *FilterMenu) renderDueLine() string {
	var b strings.Builder

	keyStyle := m.styles.MenuKey
	if m.mode == filterModeDue {
		keyStyle = m.styles.MenuItemActive
	}
	b.WriteString(keyStyle.Render("[d]"))
	b.WriteString(" ")
	b.WriteString(m.styles.MenuItem.Render("Due within:"))

	for _, dk := range dueKeys {
		indicator := " "
		style := m.styles.MenuItem
		if m.editor.GetFilter().DueWithin == dk.window {
			indicator = "●"
			style = m.styles.MenuItemActive
		}
		b.WriteString(" ")
		b.WriteString(style.Render(fmt.Sprintf("[%s%s=%s]", indicator, dk.key, dk.window.Label())))
	}

	b.WriteString("\n")
	return b.String()
}

func (m *FilterMenu) renderCategoryLine() string {
	keyStyle := m.styles.MenuKey
	if m.mode == filterModeCategory {
		keyStyle = m.styles.MenuItemActive
	}

	current := "any"
	style := m.styles.MenuItem
	if m.editor.GetFilter().Category != "" {
		current = m.editor.GetFilter().Category
		style = m.styles.MenuItemActive
	}
	if len(m.categories) == 0 {
		keyStyle = m.styles.MenuItemDisabled
		current = "no categories yet"
		style = m.styles.MenuItemDisabled
	}

	return keyStyle.Render("[g]") + " " + m.styles.MenuItem.Render("Category:") + " " + style.Render(current) + "\n"
}

// Title returns the overlay title
func (m *FilterMenu) Title() string {
	return "Filter"
}

// Size returns the overlay dimensions
func (m *FilterMenu) Size() (width, height int) {
	height = 9
	if m.mode == filterModeCategory {
		height += len(m.categories) + 1
	}
	return 64, height
}
