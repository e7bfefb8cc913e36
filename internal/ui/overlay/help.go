package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		viewHeight: 20,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, func() tea.Msg { return CloseOverlayMsg{} }
	case "j", "down":
		if h.scroll < h.maxScroll {
			h.scroll++
		}
	case "k", "up":
		if h.scroll > 0 {
			h.scroll--
		}
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range Keymap() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.MenuItemActive.Render(cat.Name + ":"))
		content.WriteString("\n")
		for _, binding := range cat.Bindings {
			content.WriteString("  " + h.styles.MenuKey.Render(binding.Key) + "  " + h.styles.MenuItem.Render(binding.Description))
			content.WriteString("\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	result := strings.Join(lines[h.scroll:min(h.scroll+h.viewHeight, len(lines))], "\n")
	if h.maxScroll > 0 {
		result += "\n\n" + h.styles.Footer.Render("[j/k to scroll, g/G to jump]")
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 56, h.viewHeight + 4
}

// Keymap returns every keybinding grouped by page
func Keymap() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Tasks",
			Bindings: []KeyBinding{
				{Key: "j/k", Description: "Move down/up"},
				{Key: "g/G", Description: "Jump to top/bottom"},
				{Key: "n", Description: "New task"},
				{Key: "Enter", Description: "Open task details"},
				{Key: "x", Description: "Mark done"},
				{Key: "d", Description: "Delete (asks first)"},
				{Key: "f", Description: "Filter menu"},
				{Key: "s", Description: "Sort menu"},
				{Key: "F", Description: "Clear filter and sort"},
				{Key: "C", Description: "Add category"},
				{Key: "Space", Description: "Action menu"},
			},
		},
		{
			Name: "Archive",
			Bindings: []KeyBinding{
				{Key: "j/k", Description: "Move down/up"},
				{Key: "u", Description: "Uncomplete task"},
				{Key: "d", Description: "Delete completed task"},
				{Key: "Space", Description: "Toggle restore as completed"},
				{Key: "r", Description: "Restore deleted task"},
			},
		},
		{
			Name: "Details",
			Bindings: []KeyBinding{
				{Key: "Tab", Description: "Next field"},
				{Key: "Space", Description: "Toggle subtask"},
				{Key: "Ctrl+S", Description: "Save"},
				{Key: "Ctrl+D", Description: "Delete task"},
			},
		},
		{
			Name: "Other",
			Bindings: []KeyBinding{
				{Key: "Tab", Description: "Switch tasks/archive"},
				{Key: "t", Description: "Next theme"},
				{Key: ",", Description: "Settings"},
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
}
