package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusCreateSubmit = formFieldCount
	createFocusSlots  = formFieldCount + 1
)

// CreateTaskOverlay provides a form to create a new task
type CreateTaskOverlay struct {
	form   taskForm
	styles *Styles
}

// NewCreateTaskOverlay creates a new task creation overlay
func NewCreateTaskOverlay(categories []string) *CreateTaskOverlay {
	return &CreateTaskOverlay{
		form:   newTaskForm(categories),
		styles: New(),
	}
}

// Init initializes the overlay
func (c *CreateTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// SetCategories refreshes the category picker, selecting selected
func (c *CreateTaskOverlay) SetCategories(names []string, selected string) {
	c.form.category.set(names, selected)
}

// Update handles messages
func (c *CreateTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if c.form.focus < formFieldCount {
			cmd = c.form.handleKeyless(msg)
		}
		return c, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return c, func() tea.Msg { return CloseOverlayMsg{} }

	case "ctrl+s":
		return c, c.submit()

	case "tab":
		c.form.setFocus((c.form.focus + 1) % createFocusSlots)
		return c, nil

	case "shift+tab":
		c.form.setFocus((c.form.focus - 1 + createFocusSlots) % createFocusSlots)
		return c, nil

	case "enter":
		if c.form.focus == focusCreateSubmit || c.form.focus == focusTitle || c.form.focus == focusDue {
			return c, c.submit()
		}
	}

	if c.form.focus == focusCreateSubmit {
		return c, nil
	}
	return c, c.form.handleKey(keyMsg)
}

// View renders the form
func (c *CreateTaskOverlay) View() string {
	var b strings.Builder

	b.WriteString(c.form.view(c.styles, ""))
	b.WriteString("\n")
	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", 56)))
	b.WriteString("\n\n")

	submitStyle := c.styles.MenuItem
	if c.form.focus == focusCreateSubmit {
		submitStyle = c.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ Add Task ]"))
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("Tab") + " " + c.styles.Footer.Render("Switch fields"),
		c.styles.MenuKey.Render("Ctrl+S") + " " + c.styles.Footer.Render("Submit"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.Footer.Render("Cancel"),
	}
	b.WriteString(c.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// submit emits a TaskCreatedMsg and closes the overlay
func (c *CreateTaskOverlay) submit() tea.Cmd {
	title, cat, due, ok := c.form.values()
	if !ok {
		return nil
	}

	created := TaskCreatedMsg{
		Title:    title,
		Category: cat,
		DueDate:  due,
		Priority: c.form.priority,
		Notes:    c.form.notesValue(),
	}
	return tea.Batch(
		func() tea.Msg { return created },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (c *CreateTaskOverlay) Title() string {
	return "New Task"
}

// Size returns the overlay dimensions
func (c *CreateTaskOverlay) Size() (width, height int) {
	return 70, 26
}
