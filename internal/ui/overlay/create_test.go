package overlay

import (
	"testing"

	"github.com/riordanpawley/grove/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTaskOverlay(t *testing.T) {
	overlay := NewCreateTaskOverlay([]string{"Work"})

	require.NotNil(t, overlay)
	assert.Equal(t, focusTitle, overlay.form.focus)
	assert.Equal(t, domain.PriorityNone, overlay.form.priority)
	assert.Equal(t, "", overlay.form.category.value())
	assert.Equal(t, "New Task", overlay.Title())

	width, height := overlay.Size()
	assert.Equal(t, 70, width)
	assert.Equal(t, 26, height)
}

func TestCreateTaskOverlay_View(t *testing.T) {
	view := NewCreateTaskOverlay(nil).View()

	for _, want := range []string{"Title:", "Category:", "Due:", "Priority:", "Notes:", "Add Task", "(none)"} {
		assert.Contains(t, view, want)
	}
}

func TestCreateTaskOverlay_Submit(t *testing.T) {
	overlay := NewCreateTaskOverlay([]string{"Work", "Home"})

	typeText(overlay, "Buy milk")
	press(overlay, "tab", "right")
	press(overlay, "tab")
	typeText(overlay, "2026-03-12")
	press(overlay, "tab", "3")

	msgs := collect(press(overlay, "ctrl+s"))

	created, ok := find[TaskCreatedMsg](msgs)
	require.True(t, ok, "expected TaskCreatedMsg in %v", msgs)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, "Work", created.Category)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, domain.NewDate(2026, 3, 12), *created.DueDate)

	_, closed := find[CloseOverlayMsg](msgs)
	assert.True(t, closed)
}

func TestCreateTaskOverlay_EnterInTitleSubmits(t *testing.T) {
	overlay := NewCreateTaskOverlay(nil)
	typeText(overlay, "Quick one")

	created, ok := find[TaskCreatedMsg](collect(press(overlay, "enter")))

	require.True(t, ok)
	assert.Equal(t, "Quick one", created.Title)
	assert.Nil(t, created.DueDate)
	assert.Equal(t, "", created.Category)
}

func TestCreateTaskOverlay_EmptyTitle(t *testing.T) {
	overlay := NewCreateTaskOverlay(nil)
	typeText(overlay, "   ")

	assert.Nil(t, press(overlay, "ctrl+s"))
	assert.Contains(t, overlay.View(), "title is required")
}

func TestCreateTaskOverlay_InvalidDueDate(t *testing.T) {
	overlay := NewCreateTaskOverlay(nil)
	typeText(overlay, "Pay rent")
	press(overlay, "tab", "tab")
	typeText(overlay, "next week")

	assert.Nil(t, press(overlay, "ctrl+s"))
	assert.Contains(t, overlay.View(), "due date must look like")
}

func TestCreateTaskOverlay_TabNavigation(t *testing.T) {
	overlay := NewCreateTaskOverlay(nil)

	expected := []int{focusCategory, focusDue, focusPriority, focusNotes, focusCreateSubmit, focusTitle}
	for _, want := range expected {
		press(overlay, "tab")
		assert.Equal(t, want, overlay.form.focus)
	}

	press(overlay, "shift+tab")
	assert.Equal(t, focusCreateSubmit, overlay.form.focus)
}

func TestCreateTaskOverlay_Priority(t *testing.T) {
	overlay := NewCreateTaskOverlay(nil)
	press(overlay, "tab", "tab", "tab")
	require.Equal(t, focusPriority, overlay.form.focus)

	press(overlay, "2")
	assert.Equal(t, domain.PriorityMedium, overlay.form.priority)

	press(overlay, "right", "right")
	assert.Equal(t, domain.PriorityHigh, overlay.form.priority, "right stops at high")

	press(overlay, "0", "left")
	assert.Equal(t, domain.PriorityNone, overlay.form.priority, "left stops at none")
}

func TestCreateTaskOverlay_AddNewCategory(t *testing.T) {
	overlay := NewCreateTaskOverlay([]string{"Work"})
	press(overlay, "tab", "left")
	assert.Equal(t, addNewLabel, overlay.form.category.label())

	msgs := collect(press(overlay, "enter"))
	_, ok := find[NewCategoryRequestedMsg](msgs)
	assert.True(t, ok)

	overlay.SetCategories([]string{"Work", "Errands"}, "Errands")
	assert.Equal(t, "Errands", overlay.form.category.value())
}

func TestCreateTaskOverlay_EscapeCloses(t *testing.T) {
	overlay := NewCreateTaskOverlay(nil)

	cmd := press(overlay, "esc")
	require.NotNil(t, cmd)
	_, ok := cmd().(CloseOverlayMsg)
	assert.True(t, ok)
}

func TestCategoryPicker(t *testing.T) {
	p := newCategoryPicker([]string{"Work", "Home"}, "Home")
	assert.Equal(t, "Home", p.value())

	p.cycle(1)
	assert.True(t, p.onAddNew())
	assert.Equal(t, "", p.value(), "add-new is never a value")

	p.cycle(1)
	assert.Equal(t, "(none)", p.label())

	p.cycle(-1)
	assert.Equal(t, addNewLabel, p.label())

	p.set([]string{"Work"}, "Gone")
	assert.Equal(t, "", p.value(), "unknown selection falls back to none")
}
