package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/grove/internal/category"
	"github.com/riordanpawley/grove/internal/domain"
)

// Focus slots shared by the create and edit forms
const (
	focusTitle = iota
	focusCategory
	focusDue
	focusPriority
	focusNotes
	formFieldCount
)

// addNewLabel is the last entry of the category picker
var addNewLabel = category.Reserved[1]

// categoryPicker cycles through "(none)", the known categories and the
// add-new affordance
type categoryPicker struct {
	names []string
	index int // 0 is none, len(names)+1 is add-new
}

func newCategoryPicker(names []string, selected string) categoryPicker {
	p := categoryPicker{}
	p.set(names, selected)
	return p
}

func (p *categoryPicker) set(names []string, selected string) {
	p.names = append([]string(nil), names...)
	p.index = 0
	for i, n := range p.names {
		if n == selected {
			p.index = i + 1
		}
	}
}

func (p *categoryPicker) cycle(delta int) {
	n := len(p.names) + 2
	p.index = ((p.index+delta)%n + n) % n
}

func (p categoryPicker) onAddNew() bool {
	return p.index == len(p.names)+1
}

// value returns the chosen category, "" for none or add-new
func (p categoryPicker) value() string {
	if p.index == 0 || p.onAddNew() {
		return ""
	}
	return p.names[p.index-1]
}

func (p categoryPicker) label() string {
	switch {
	case p.index == 0:
		return "(none)"
	case p.onAddNew():
		return addNewLabel
	default:
		return p.names[p.index-1]
	}
}

// taskForm holds the editable task fields used by both task overlays
type taskForm struct {
	title    textinput.Model
	category categoryPicker
	due      textinput.Model
	priority domain.Priority
	notes    textarea.Model
	focus    int
	err      string
}

func newTaskForm(categories []string) taskForm {
	title := textinput.New()
	title.Placeholder = "Task title..."
	title.CharLimit = 200
	title.Width = 50
	title.Focus()

	due := textinput.New()
	due.Placeholder = domain.DateLayout
	due.CharLimit = len(domain.DateLayout)
	due.Width = 12

	notes := textarea.New()
	notes.Placeholder = "Notes, markdown supported (optional)..."
	notes.CharLimit = 4000
	notes.SetWidth(56)
	notes.SetHeight(4)

	return taskForm{
		title:    title,
		category: newCategoryPicker(categories, ""),
		due:      due,
		priority: domain.PriorityNone,
		notes:    notes,
		focus:    focusTitle,
	}
}

// fill loads an existing task into the form
func (f *taskForm) fill(t domain.Task, categories []string) {
	f.title.SetValue(t.Title)
	f.category.set(categories, t.Category)
	if t.DueDate != nil {
		f.due.SetValue(t.DueDate.String())
	}
	f.priority = t.Priority
	f.notes.SetValue(t.Notes)
}

// setFocus moves focus to slot i; slots past the form fields blur every input
func (f *taskForm) setFocus(i int) {
	f.focus = i
	f.title.Blur()
	f.due.Blur()
	f.notes.Blur()
	switch i {
	case focusTitle:
		f.title.Focus()
	case focusDue:
		f.due.Focus()
	case focusNotes:
		f.notes.Focus()
	}
}

// typing reports whether a text field has focus, so single-letter shortcuts
// must not be intercepted
func (f *taskForm) typing() bool {
	return f.focus == focusTitle || f.focus == focusDue || f.focus == focusNotes
}

// handleKey updates the focused form field. It returns a command when the
// category picker asks for a new category.
func (f *taskForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch f.focus {
	case focusCategory:
		switch msg.String() {
		case "left", "h":
			f.category.cycle(-1)
		case "right", "l", " ":
			f.category.cycle(1)
		case "enter", "+":
			if f.category.onAddNew() || msg.String() == "+" {
				return func() tea.Msg { return NewCategoryRequestedMsg{} }
			}
		}
		return nil

	case focusPriority:
		switch key := msg.String(); key {
		case "0", "1", "2", "3":
			f.priority = domain.ParsePriority(key)
		case "left", "h":
			if f.priority > domain.PriorityNone {
				f.priority--
			}
		case "right", "l":
			if f.priority < domain.PriorityHigh {
				f.priority++
			}
		}
		return nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDue:
		f.due, cmd = f.due.Update(msg)
	case focusNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return cmd
}

// values validates the form and records the first problem in err
func (f *taskForm) values() (title, cat string, due *domain.Date, ok bool) {
	f.err = ""
	title = strings.TrimSpace(f.title.Value())
	if title == "" {
		f.err = "title is required"
		return "", "", nil, false
	}
	if raw := strings.TrimSpace(f.due.Value()); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			f.err = fmt.Sprintf("due date must look like %s", domain.DateLayout)
			return "", "", nil, false
		}
		due = &d
	}
	return title, f.category.value(), due, true
}

func (f *taskForm) notesValue() string {
	return strings.TrimSpace(f.notes.Value())
}

func (f *taskForm) view(s *Styles, notesPreview string) string {
	var b strings.Builder

	b.WriteString(f.label(s, focusTitle, "Title:") + "  " + f.title.View() + "\n\n")

	catStyle := s.MenuItem
	if f.focus == focusCategory {
		catStyle = s.MenuItemActive
	}
	b.WriteString(f.label(s, focusCategory, "Category:") + "  " + catStyle.Render("‹ "+f.category.label()+" ›") + "\n\n")

	b.WriteString(f.label(s, focusDue, "Due:") + "  " + f.due.View() + "\n\n")

	b.WriteString(f.label(s, focusPriority, "Priority:") + "  " + f.renderPriority(s) + "\n\n")

	b.WriteString(f.label(s, focusNotes, "Notes:") + "\n")
	if f.focus != focusNotes && notesPreview != "" {
		b.WriteString(notesPreview)
	} else {
		b.WriteString(f.notes.View())
	}
	b.WriteString("\n")

	if f.err != "" {
		b.WriteString("\n" + s.Error.Render("✗ "+f.err) + "\n")
	}

	return b.String()
}

func (f *taskForm) label(s *Styles, slot int, text string) string {
	if f.focus == slot {
		return s.LabelFocused.Render(text)
	}
	return s.Label.Render(text)
}

func (f *taskForm) renderPriority(s *Styles) string {
	parts := make([]string, 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		style := s.MenuItem
		indicator := " "
		if p == f.priority {
			style = s.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%d %s]", indicator, int(p), p)))
	}
	return strings.Join(parts, " ")
}

// handleKeyless forwards non-key messages such as cursor blinks to the
// focused text input
func (f *taskForm) handleKeyless(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDue:
		f.due, cmd = f.due.Update(msg)
	case focusNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return cmd
}
