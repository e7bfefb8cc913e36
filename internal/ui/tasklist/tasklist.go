// Package tasklist renders the active task table.
package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/truncate"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/ui/styles"
)

// Fixed column widths; the title takes what is left
const (
	colCursor   = 5
	colCheck    = 4
	colCategory = 14
	colDue      = 12
	colPriority = 5
	colSubtasks = 7
	fixedWidth  = colCursor + colCheck + colCategory + colDue + colPriority + colSubtasks
)

// View is a scrollable table of active tasks
type View struct {
	tasks        []domain.Task
	pending      map[uuid.UUID]bool
	today        domain.Date
	cursor       int
	scrollOffset int
	styles       *styles.Styles
	width        int
	height       int
}

// New creates an empty View
func New(s *styles.Styles, width, height int) *View {
	return &View{
		pending: make(map[uuid.UUID]bool),
		styles:  s,
		width:   width,
		height:  height,
	}
}

// SetTasks replaces the rows. today anchors the due column.
func (v *View) SetTasks(tasks []domain.Task, today domain.Date) {
	v.tasks = tasks
	v.today = today
	v.SetCursor(v.cursor)
}

// SetPending marks tasks whose completion is in progress; their done box is
// shown ticked and disabled
func (v *View) SetPending(pending map[uuid.UUID]bool) {
	v.pending = pending
}

// SetStyles swaps the styles after a theme change
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// SetDimensions updates the view dimensions
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ensureCursorVisible()
}

// SetCursor moves the cursor, clamped to the rows
func (v *View) SetCursor(index int) {
	switch {
	case index < 0:
		v.cursor = 0
	case index >= len(v.tasks):
		v.cursor = max(0, len(v.tasks)-1)
	default:
		v.cursor = index
	}
	v.ensureCursorVisible()
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

// GotoTop moves the cursor to the first row
func (v *View) GotoTop() {
	v.SetCursor(0)
}

// GotoBottom moves the cursor to the last row
func (v *View) GotoBottom() {
	v.SetCursor(len(v.tasks) - 1)
}

// Current returns the task under the cursor
func (v *View) Current() (domain.Task, bool) {
	if v.cursor >= 0 && v.cursor < len(v.tasks) {
		return v.tasks[v.cursor], true
	}
	return domain.Task{}, false
}

// Len returns the number of rows
func (v *View) Len() int {
	return len(v.tasks)
}

// Render renders the table
func (v *View) Render() string {
	if len(v.tasks) == 0 {
		return v.styles.Empty.Render("No tasks here. Press n to add one.")
	}

	var b strings.Builder
	b.WriteString(v.renderHeader())
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(strings.Repeat("─", max(v.width, fixedWidth+10))))
	b.WriteString("\n")

	start := v.scrollOffset
	end := min(start+v.visibleRows(), len(v.tasks))
	for i := start; i < end; i++ {
		b.WriteString(v.renderRow(i, v.tasks[i]))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(v.tasks) {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf(" ↓ %d more tasks ↓ ", len(v.tasks)-end)))
	}

	return b.String()
}

func (v *View) titleWidth() int {
	return max(10, v.width-fixedWidth)
}

func (v *View) renderHeader() string {
	h := v.styles.Muted.Bold(true)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		h.Width(colCursor).Render("#"),
		h.Width(colCheck).Render(""),
		h.Width(v.titleWidth()).Render("Title"),
		h.Width(colCategory).Render("Category"),
		h.Width(colDue).Render("Due"),
		h.Width(colPriority).Render("Pri"),
		h.Width(colSubtasks).Render("Sub"),
	)
}

func (v *View) renderRow(index int, t domain.Task) string {
	active := index == v.cursor
	pending := v.pending[t.ID]

	rowStyle := v.styles.Row
	switch {
	case pending:
		rowStyle = v.styles.RowPending
	case active:
		rowStyle = v.styles.RowActive
	}

	indicator := "  "
	if active {
		indicator = v.styles.Cursor.Render("▶ ")
	}

	check := "[ ]"
	if pending {
		check = v.styles.Checkbox.Render("[✓]")
	}

	done, total := t.SubtaskProgress()
	subtasks := ""
	if total > 0 {
		subtasks = fmt.Sprintf("%d/%d", done, total)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colCursor).Render(indicator+fmt.Sprintf("%2d", index+1)),
		lipgloss.NewStyle().Width(colCheck).Render(check),
		rowStyle.Width(v.titleWidth()).Render(Truncate(t.Title, v.titleWidth()-1)),
		v.styles.Category.Width(colCategory).Render(Truncate(t.Category, colCategory-1)),
		v.renderDue(t.DueDate),
		lipgloss.NewStyle().Width(colPriority).Render(v.renderPriority(t.Priority)),
		v.styles.Muted.Width(colSubtasks).Render(subtasks),
	)
}

func (v *View) renderDue(due *domain.Date) string {
	style := v.styles.Muted.Width(colDue)
	if due == nil {
		return style.Render("")
	}
	if due.Before(v.today) {
		style = v.styles.Overdue.Width(colDue)
	}
	return style.Render(DueLabel(*due, v.today))
}

func (v *View) renderPriority(p domain.Priority) string {
	if p == domain.PriorityNone {
		return v.styles.Muted.Render(" -")
	}
	return v.styles.PriorityBadge(p).Render(p.Short())
}

func (v *View) visibleRows() int {
	// header and separator
	return max(1, v.height-2)
}

func (v *View) ensureCursorVisible() {
	rows := v.visibleRows()
	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+rows {
		v.scrollOffset = v.cursor - rows + 1
	}
	v.scrollOffset = max(0, min(v.scrollOffset, len(v.tasks)-rows))
}

// DueLabel describes a due date relative to today
func DueLabel(due, today domain.Date) string {
	switch due.Compare(today) {
	case 0:
		return "today"
	case 1:
		if due == today.AddDays(1) {
			return "tomorrow"
		}
	}
	return due.Time().Format("Jan 2")
}

// Truncate shortens s to width cells, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
