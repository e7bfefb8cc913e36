package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/grove/internal/domain"
)

// Action keys carried in SelectionMsg.Key; Value is the task ID
const (
	ActionOpen     = "e"
	ActionComplete = "x"
	ActionDelete   = "d"
)

// Action represents a menu action
type Action struct {
	Key     string
	Label   string
	Enabled bool
}

// ActionMenu lists what can be done with one active task
type ActionMenu struct {
	task    domain.Task
	actions []Action
	cursor  int
	styles  *Styles
}

// NewActionMenu creates an action menu for task. pending marks a task whose
// completion is already under way.
func NewActionMenu(task domain.Task, pending bool) *ActionMenu {
	return &ActionMenu{
		task: task,
		actions: []Action{
			{Key: ActionOpen, Label: "Open details", Enabled: true},
			{Key: ActionComplete, Label: "Mark done", Enabled: !pending},
			{Key: "", Label: strings.Repeat("─", 20)},
			{Key: ActionDelete, Label: "Delete task", Enabled: true},
		},
		styles: New(),
	}
}

// Init initializes the menu
func (m *ActionMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ActionMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseOverlayMsg{} }
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "enter":
		return m, m.choose(m.actions[m.cursor])
	default:
		for _, a := range m.actions {
			if a.Key != "" && a.Key == keyMsg.String() {
				return m, m.choose(a)
			}
		}
	}

	return m, nil
}

func (m *ActionMenu) choose(a Action) tea.Cmd {
	if a.Key == "" || !a.Enabled {
		return nil
	}
	id := m.task.ID
	return func() tea.Msg { return SelectionMsg{Key: a.Key, Value: id} }
}

func (m *ActionMenu) moveCursor(delta int) {
	n := len(m.actions)
	for i := 1; i <= n; i++ {
		next := ((m.cursor+delta*i)%n + n) % n
		if m.actions[next].Key != "" {
			m.cursor = next
			return
		}
	}
}

// View renders the menu
func (m *ActionMenu) View() string {
	var b strings.Builder

	b.WriteString(m.styles.MenuHeader.Render(m.task.Title))
	b.WriteString("\n\n")

	for i, action := range m.actions {
		if action.Key == "" {
			b.WriteString(m.styles.Separator.Render(action.Label))
			b.WriteString("\n")
			continue
		}

		style, keyStyle := m.styles.MenuItem, m.styles.MenuKey
		if !action.Enabled {
			style, keyStyle = m.styles.MenuItemDisabled, m.styles.MenuItemDisabled
		} else if i == m.cursor {
			style = m.styles.MenuItemActive
		}

		b.WriteString(keyStyle.Render("["+action.Key+"]") + " " + style.Render(action.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("j/k: navigate • enter or key: select • esc: close"))

	return b.String()
}

// Title returns the overlay title
func (m *ActionMenu) Title() string {
	return "Actions"
}

// Size returns the overlay dimensions
func (m *ActionMenu) Size() (width, height int) {
	return 50, len(m.actions) + 7
}
