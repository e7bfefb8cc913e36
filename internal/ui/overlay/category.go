package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CategoryPrompt asks for the name of a new category
type CategoryPrompt struct {
	input  textinput.Model
	err    string
	styles *Styles
}

// NewCategoryPrompt creates a new category prompt
func NewCategoryPrompt() *CategoryPrompt {
	ti := textinput.New()
	ti.Placeholder = "Category name..."
	ti.CharLimit = 60
	ti.Width = 40
	ti.Focus()

	return &CategoryPrompt{
		input:  ti,
		styles: New(),
	}
}

// SetError shows a rejection from the registry, keeping the prompt open
func (c *CategoryPrompt) SetError(msg string) {
	c.err = msg
}

// Init initializes the prompt
func (c *CategoryPrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (c *CategoryPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return c, func() tea.Msg { return CloseOverlayMsg{} }
		case "enter":
			name := strings.TrimSpace(c.input.Value())
			if name == "" {
				c.err = "name is required"
				return c, nil
			}
			c.err = ""
			return c, func() tea.Msg { return CategoryCreatedMsg{Name: name} }
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the prompt
func (c *CategoryPrompt) View() string {
	var b strings.Builder

	b.WriteString(c.input.View())
	b.WriteString("\n")
	if c.err != "" {
		b.WriteString("\n")
		b.WriteString(c.styles.Error.Render("✗ " + c.err))
		b.WriteString("\n")
	}
	b.WriteString(c.styles.Footer.Render("Enter: Add • Esc: Cancel"))

	return b.String()
}

// Title returns the overlay title
func (c *CategoryPrompt) Title() string {
	return "New Category"
}

// Size returns the overlay dimensions
func (c *CategoryPrompt) Size() (width, height int) {
	return 50, 8
}
