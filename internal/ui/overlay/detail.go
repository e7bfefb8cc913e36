package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/session"
	"github.com/riordanpawley/grove/internal/ui/markdown"
)

const (
	focusSubtasks = formFieldCount + iota
	focusNewSubtask
	focusSave
	detailFocusSlots
)

// DetailPanel edits a task and manages its subtasks. It stays bound to one
// task identity; the app refreshes it with SetTask after subtask commands.
type DetailPanel struct {
	task       domain.Task
	form       taskForm
	newSubtask textinput.Model
	subCursor  int
	notes      *markdown.Renderer
	styles     *Styles
}

// NewDetailPanel creates a detail panel for task
func NewDetailPanel(task domain.Task, categories []string, notes *markdown.Renderer) *DetailPanel {
	form := newTaskForm(categories)
	form.fill(task, categories)

	sub := textinput.New()
	sub.Placeholder = "New subtask..."
	sub.CharLimit = 200
	sub.Width = 40

	return &DetailPanel{
		task:       task,
		form:       form,
		newSubtask: sub,
		notes:      notes,
		styles:     New(),
	}
}

// TaskID returns the identity of the task being edited
func (d *DetailPanel) TaskID() uuid.UUID {
	return d.task.ID
}

// SetTask refreshes subtasks and timestamps without touching unsaved form input
func (d *DetailPanel) SetTask(t domain.Task) {
	if t.ID != d.task.ID {
		return
	}
	d.task = t
	if d.subCursor >= len(t.Subtasks) {
		d.subCursor = max(0, len(t.Subtasks)-1)
	}
}

// SetCategories refreshes the category picker, selecting selected
func (d *DetailPanel) SetCategories(names []string, selected string) {
	d.form.category.set(names, selected)
}

// Init initializes the panel
func (d *DetailPanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if d.form.focus == focusNewSubtask {
			d.newSubtask, cmd = d.newSubtask.Update(msg)
		} else if d.form.focus < formFieldCount {
			cmd = d.form.handleKeyless(msg)
		}
		return d, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return d, func() tea.Msg { return CloseOverlayMsg{} }

	case "ctrl+s":
		return d, d.save()

	case "ctrl+d":
		id, title := d.task.ID, d.task.Title
		return d, func() tea.Msg { return DeleteRequestedMsg{TaskID: id, Title: title} }

	case "tab":
		d.setFocus((d.form.focus + 1) % detailFocusSlots)
		return d, nil

	case "shift+tab":
		d.setFocus((d.form.focus - 1 + detailFocusSlots) % detailFocusSlots)
		return d, nil
	}

	switch d.form.focus {
	case focusSubtasks:
		return d, d.handleSubtaskKey(keyMsg)

	case focusNewSubtask:
		if keyMsg.String() == "enter" {
			return d, d.addSubtask()
		}
		var cmd tea.Cmd
		d.newSubtask, cmd = d.newSubtask.Update(keyMsg)
		return d, cmd

	case focusSave:
		if keyMsg.String() == "enter" {
			return d, d.save()
		}
		return d, nil
	}

	if keyMsg.String() == "enter" && (d.form.focus == focusTitle || d.form.focus == focusDue) {
		return d, d.save()
	}
	return d, d.form.handleKey(keyMsg)
}

func (d *DetailPanel) setFocus(i int) {
	d.form.setFocus(i)
	if i == focusNewSubtask {
		d.newSubtask.Focus()
	} else {
		d.newSubtask.Blur()
	}
}

func (d *DetailPanel) handleSubtaskKey(msg tea.KeyMsg) tea.Cmd {
	subs := d.task.Subtasks
	switch msg.String() {
	case "j", "down":
		if d.subCursor < len(subs)-1 {
			d.subCursor++
		}
	case "k", "up":
		if d.subCursor > 0 {
			d.subCursor--
		}
	case " ", "enter", "x":
		if d.subCursor < len(subs) {
			toggled := SubtaskToggledMsg{
				TaskID:    d.task.ID,
				SubtaskID: subs[d.subCursor].ID,
				Checked:   !subs[d.subCursor].Done(),
			}
			return func() tea.Msg { return toggled }
		}
	}
	return nil
}

func (d *DetailPanel) addSubtask() tea.Cmd {
	title := strings.TrimSpace(d.newSubtask.Value())
	if title == "" {
		return nil
	}
	d.newSubtask.Reset()
	added := SubtaskAddedMsg{TaskID: d.task.ID, Title: title}
	return func() tea.Msg { return added }
}

func (d *DetailPanel) save() tea.Cmd {
	title, cat, due, ok := d.form.values()
	if !ok {
		return nil
	}

	edited := TaskEditedMsg{
		ID: d.task.ID,
		Edit: session.TaskEdit{
			Title:    title,
			Category: cat,
			DueDate:  due,
			Notes:    d.form.notesValue(),
			Priority: fmt.Sprint(int(d.form.priority)),
		},
	}
	return tea.Batch(
		func() tea.Msg { return edited },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	var b strings.Builder

	b.WriteString(d.styles.Footer.Render(fmt.Sprintf("Created %s", d.task.CreatedAt.Format("Jan 2, 2006 15:04"))))
	b.WriteString("\n\n")

	preview := ""
	if d.notes != nil {
		preview = d.notes.Render(d.task.Notes, 56)
	}
	b.WriteString(d.form.view(d.styles, preview))
	b.WriteString("\n")

	b.WriteString(d.renderSubtasks())
	b.WriteString("\n")

	saveStyle := d.styles.MenuItem
	if d.form.focus == focusSave {
		saveStyle = d.styles.MenuItemActive
	}
	b.WriteString(saveStyle.Render("[ Save ]"))
	b.WriteString("\n\n")

	hints := []string{
		d.styles.MenuKey.Render("Tab") + " " + d.styles.Footer.Render("Switch"),
		d.styles.MenuKey.Render("Ctrl+S") + " " + d.styles.Footer.Render("Save"),
		d.styles.MenuKey.Render("Ctrl+D") + " " + d.styles.Footer.Render("Delete"),
		d.styles.MenuKey.Render("Esc") + " " + d.styles.Footer.Render("Close"),
	}
	b.WriteString(d.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (d *DetailPanel) renderSubtasks() string {
	var b strings.Builder

	done, total := d.task.SubtaskProgress()
	header := "Subtasks"
	if total > 0 {
		header = fmt.Sprintf("Subtasks (%d/%d)", done, total)
	}
	if d.form.focus == focusSubtasks {
		b.WriteString(d.styles.MenuItemActive.Render(header))
	} else {
		b.WriteString(d.styles.MenuHeader.Render(header))
	}
	b.WriteString("\n")

	if total == 0 {
		b.WriteString(d.styles.MenuItemDisabled.Render("  no subtasks yet"))
		b.WriteString("\n")
	}
	for i, sub := range d.task.Subtasks {
		cursor := "  "
		if d.form.focus == focusSubtasks && i == d.subCursor {
			cursor = "> "
		}
		box, style := "[ ]", d.styles.MenuItem
		if sub.Done() {
			box, style = "[x]", d.styles.Done
		}
		b.WriteString(cursor + box + " " + style.Render(sub.Title))
		b.WriteString("\n")
	}

	label := d.styles.Label
	if d.form.focus == focusNewSubtask {
		label = d.styles.LabelFocused
	}
	b.WriteString(label.Render("Add:") + "  " + d.newSubtask.View())
	b.WriteString("\n")

	return b.String()
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Task Details"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	return 72, 30 + len(d.task.Subtasks)
}
