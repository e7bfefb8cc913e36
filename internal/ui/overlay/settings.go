package overlay

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/grove/internal/ui/styles"
)

// Setting keys carried in SelectionMsg.Key
const (
	SettingKeyTheme = "theme"
	SettingKeyDelay = "delay"
	SettingKeySave  = "save"
)

// completeDelays are the completion delays offered in the menu
var completeDelays = []string{"0s", "500ms", "1s", "2s"}

// SettingType represents the type of a setting
type SettingType int

const (
	// SettingChoice is a multiple-choice setting (Left/Right to cycle)
	SettingChoice SettingType = iota
	// SettingAction is an action that triggers something (Enter to activate)
	SettingAction
	// SettingSeparator is a visual separator (not selectable)
	SettingSeparator
)

// SettingItem represents a single setting in the settings menu
type SettingItem struct {
	Key     string
	Label   string
	Type    SettingType
	Value   string
	Choices []string
}

// SettingsOverlay edits runtime settings. Every change is reported as a
// SelectionMsg keyed by the setting.
type SettingsOverlay struct {
	items  []SettingItem
	cursor int
	styles *Styles
}

// NewSettingsOverlay creates a settings overlay showing the current values
func NewSettingsOverlay(theme string, delay time.Duration) *SettingsOverlay {
	delayValue := delay.String()
	if delay == 0 {
		delayValue = "0s"
	}

	return &SettingsOverlay{
		items: []SettingItem{
			{Key: SettingKeyTheme, Label: "Theme", Type: SettingChoice, Value: theme, Choices: styles.ThemeNames()},
			{Key: SettingKeyDelay, Label: "Completion delay", Type: SettingChoice, Value: delayValue, Choices: completeDelays},
			{Label: strings.Repeat("─", 30), Type: SettingSeparator},
			{Key: SettingKeySave, Label: "Save to config file", Type: SettingAction},
		},
		styles: New(),
	}
}

// Init initializes the overlay
func (m *SettingsOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SettingsOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case "h", "left":
		return m, m.cycleChoice(-1)
	case "l", "right", " ":
		return m, m.cycleChoice(1)
	case "enter":
		if m.items[m.cursor].Type == SettingAction {
			key := m.items[m.cursor].Key
			return m, func() tea.Msg { return SelectionMsg{Key: key} }
		}
		return m, m.cycleChoice(1)
	}

	return m, nil
}

// Value returns the current value of the setting with key
func (m *SettingsOverlay) Value(key string) string {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value
		}
	}
	return ""
}

// View renders the settings menu
func (m *SettingsOverlay) View() string {
	var b strings.Builder

	for i, item := range m.items {
		if item.Type == SettingSeparator {
			b.WriteString(m.styles.Separator.Render(item.Label))
			b.WriteString("\n")
			continue
		}

		style := m.styles.MenuItem
		cursor := "  "
		if i == m.cursor {
			style = m.styles.MenuItemActive
			cursor = "> "
		}

		line := cursor + style.Render(item.Label)
		if item.Type == SettingChoice {
			line += " " + m.styles.MenuKey.Render(fmt.Sprintf("‹ %s ›", item.Value))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("j/k: navigate • h/l: change • enter: activate • esc: close"))

	return b.String()
}

// Title returns the overlay title
func (m *SettingsOverlay) Title() string {
	return "Settings"
}

// Size returns the overlay dimensions
func (m *SettingsOverlay) Size() (width, height int) {
	return 56, len(m.items) + 6
}

func (m *SettingsOverlay) moveCursor(delta int) {
	n := len(m.items)
	for i := 1; i <= n; i++ {
		next := ((m.cursor+delta*i)%n + n) % n
		if m.items[next].Type != SettingSeparator {
			m.cursor = next
			return
		}
	}
}

func (m *SettingsOverlay) cycleChoice(delta int) tea.Cmd {
	item := &m.items[m.cursor]
	if item.Type != SettingChoice || len(item.Choices) == 0 {
		return nil
	}

	idx := 0
	for i, choice := range item.Choices {
		if choice == item.Value {
			idx = i
			break
		}
	}
	n := len(item.Choices)
	item.Value = item.Choices[((idx+delta)%n+n)%n]

	key, value := item.Key, item.Value
	return func() tea.Msg { return SelectionMsg{Key: key, Value: value} }
}
