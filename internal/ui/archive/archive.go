// Package archive renders the completed and deleted task sections.
package archive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/ui/styles"
	"github.com/riordanpawley/grove/internal/ui/tasklist"
)

// Section identifies which archive list a row belongs to
type Section int

const (
	SectionCompleted Section = iota
	SectionDeleted
)

const (
	colCursor   = 3
	colCheck    = 4
	colCategory = 14
	colDate     = 16
)

// View shows completed tasks above deleted tasks with a single cursor
// running through both. Each deleted row carries a "restore as completed"
// checkbox that defaults to unchecked.
type View struct {
	completed []domain.Task
	deleted   []domain.Task
	asDone    map[uuid.UUID]bool
	cursor    int
	styles    *styles.Styles
	width     int
}

// New creates an empty View
func New(s *styles.Styles, width int) *View {
	return &View{
		asDone: make(map[uuid.UUID]bool),
		styles: s,
		width:  width,
	}
}

// SetTasks replaces both sections
func (v *View) SetTasks(completed, deleted []domain.Task) {
	v.completed = completed
	v.deleted = deleted

	live := make(map[uuid.UUID]bool, len(deleted))
	for _, t := range deleted {
		if v.asDone[t.ID] {
			live[t.ID] = true
		}
	}
	v.asDone = live
	v.SetCursor(v.cursor)
}

// SetStyles swaps the styles after a theme change
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// SetWidth updates the view width
func (v *View) SetWidth(width int) {
	v.width = width
}

// Len returns the number of rows across both sections
func (v *View) Len() int {
	return len(v.completed) + len(v.deleted)
}

// SetCursor moves the cursor, clamped to the rows
func (v *View) SetCursor(index int) {
	v.cursor = max(0, min(index, v.Len()-1))
}

// Cursor returns the cursor position
func (v *View) Cursor() int {
	return v.cursor
}

// MoveUp moves the cursor up by n rows
func (v *View) MoveUp(n int) {
	v.SetCursor(v.cursor - n)
}

// MoveDown moves the cursor down by n rows
func (v *View) MoveDown(n int) {
	v.SetCursor(v.cursor + n)
}

// Current returns the task under the cursor and its section
func (v *View) Current() (domain.Task, Section, bool) {
	switch {
	case v.cursor < len(v.completed):
		return v.completed[v.cursor], SectionCompleted, true
	case v.cursor < v.Len():
		return v.deleted[v.cursor-len(v.completed)], SectionDeleted, true
	default:
		return domain.Task{}, SectionCompleted, false
	}
}

// ToggleRestoreAsCompleted flips the checkbox of the deleted row under the
// cursor. It reports false when the cursor is not on a deleted row.
func (v *View) ToggleRestoreAsCompleted() bool {
	t, section, ok := v.Current()
	if !ok || section != SectionDeleted {
		return false
	}
	v.asDone[t.ID] = !v.asDone[t.ID]
	return true
}

// RestoreAsCompleted reports the checkbox state for a deleted task
func (v *View) RestoreAsCompleted(id uuid.UUID) bool {
	return v.asDone[id]
}

// Render renders both sections
func (v *View) Render() string {
	var b strings.Builder

	b.WriteString(v.styles.SectionTitle.Render(fmt.Sprintf("Completed (%d)", len(v.completed))))
	b.WriteString("\n")
	if len(v.completed) == 0 {
		b.WriteString(v.styles.Empty.Render("Nothing completed yet."))
		b.WriteString("\n")
	}
	for i, t := range v.completed {
		b.WriteString(v.renderCompleted(i, t))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.SectionTitle.Render(fmt.Sprintf("Deleted (%d)", len(v.deleted))))
	b.WriteString("\n")
	if len(v.deleted) == 0 {
		b.WriteString(v.styles.Empty.Render("Nothing deleted."))
		b.WriteString("\n")
	}
	for i, t := range v.deleted {
		b.WriteString(v.renderDeleted(len(v.completed)+i, t))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (v *View) titleWidth() int {
	return max(10, v.width-colCursor-colCheck-colCategory-colDate)
}

func (v *View) cursorCell(index int) string {
	if index == v.cursor {
		return v.styles.Cursor.Width(colCursor).Render("▶")
	}
	return lipgloss.NewStyle().Width(colCursor).Render("")
}

func (v *View) titleStyle(index int) lipgloss.Style {
	if index == v.cursor {
		return v.styles.RowActive
	}
	return v.styles.Row
}

func (v *View) renderCompleted(index int, t domain.Task) string {
	when := ""
	if t.CompletedAt != nil {
		when = "done " + t.CompletedAt.Format("Jan 2 15:04")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		v.cursorCell(index),
		v.styles.Checkbox.Width(colCheck).Render("✓"),
		v.titleStyle(index).Width(v.titleWidth()).Render(tasklist.Truncate(t.Title, v.titleWidth()-1)),
		v.styles.Category.Width(colCategory).Render(tasklist.Truncate(t.Category, colCategory-1)),
		v.styles.Muted.Width(colDate).Render(when),
	)
}

func (v *View) renderDeleted(index int, t domain.Task) string {
	box := "[ ]"
	if v.asDone[t.ID] {
		box = v.styles.Checkbox.Render("[x]")
	}
	when := ""
	if t.DeletedAt != nil {
		when = "gone " + t.DeletedAt.Format("Jan 2 15:04")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		v.cursorCell(index),
		lipgloss.NewStyle().Width(colCheck).Render(box),
		v.titleStyle(index).Width(v.titleWidth()).Render(tasklist.Truncate(t.Title, v.titleWidth()-1)),
		v.styles.Category.Width(colCategory).Render(tasklist.Truncate(t.Category, colCategory-1)),
		v.styles.Muted.Width(colDate).Render(when),
	)
}
