package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/config"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/session"
	"github.com/riordanpawley/grove/internal/types"
	"github.com/riordanpawley/grove/internal/ui/archive"
	"github.com/riordanpawley/grove/internal/ui/overlay"
	"github.com/riordanpawley/grove/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return testNow }

// newTestModel builds a model with no sample task and no completion delay
func newTestModel(t *testing.T, tweak ...func(*config.Config)) Model {
	t.Helper()
	prev := styles.Active()
	t.Cleanup(func() { styles.SetTheme(prev) })

	cfg := config.DefaultConfig()
	seed := false
	cfg.UI.SeedSampleTask = &seed
	cfg.SetCompleteDelay(0)
	for _, fn := range tweak {
		fn(cfg)
	}

	m := New(cfg, Options{
		Clock:      fixedClock{},
		Now:        func() time.Time { return testNow },
		ConfigPath: filepath.Join(t.TempDir(), config.FileName),
	})
	return send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// send feeds one message and drops the resulting command
func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// press feeds keys and runs the overlay messages they produce
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, cmd := m.Update(keyMsg(k))
		m = pump(next.(Model), cmd)
	}
	return m
}

// pump runs cmd and feeds back overlay messages. Anything else (blink,
// ticks) is dropped so tests never wait on a timer.
func pump(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = pump(m, c)
		}
	case overlay.SelectionMsg, overlay.CloseOverlayMsg, overlay.TaskCreatedMsg,
		overlay.TaskEditedMsg, overlay.SubtaskAddedMsg, overlay.SubtaskToggledMsg,
		overlay.DeleteRequestedMsg, overlay.NewCategoryRequestedMsg, overlay.CategoryCreatedMsg:
		next, c := m.Update(msg)
		m = pump(next.(Model), c)
	}
	return m
}

func addTask(t *testing.T, m Model, msg overlay.TaskCreatedMsg) (Model, domain.Task) {
	t.Helper()
	before := m.session.Len()
	m = send(m, msg)
	require.Equal(t, before+1, m.session.Len(), "task should be added")
	active := m.session.SelectActive(nil, nil)
	return m, active[len(active)-1]
}

func sessionEdit(title, priority string) session.TaskEdit {
	return session.TaskEdit{Title: title, Priority: priority}
}

func lastToast(t *testing.T, m Model) Toast {
	t.Helper()
	require.NotEmpty(t, m.toasts)
	return m.toasts[len(m.toasts)-1]
}

func TestNew_SeedsSampleTaskAndCategories(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) {
		seed := true
		cfg.UI.SeedSampleTask = &seed
		cfg.Categories = []string{"Work", "Home", "add-new"}
	})

	active := m.session.SelectActive(nil, nil)
	require.Len(t, active, 1)
	assert.Equal(t, SampleTaskTitle, active[0].Title)
	assert.Equal(t, []string{"Work", "Home"}, m.session.Categories(), "reserved names are skipped")
	assert.Equal(t, 1, m.tasks.Len())
	assert.Empty(t, m.toasts, "seeding is silent")
}

func TestCreateTask(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "n")
	_, ok := m.overlayStack.Current().(*overlay.CreateTaskOverlay)
	require.True(t, ok, "n opens the create form")

	due := testNow.AddDate(0, 0, 2)
	date := domain.DateOf(due)
	m = pump(m, func() tea.Msg {
		return overlay.TaskCreatedMsg{Title: "Write report", DueDate: &date, Priority: domain.PriorityHigh}
	})

	active := m.session.SelectActive(nil, nil)
	require.Len(t, active, 1)
	assert.Equal(t, "Write report", active[0].Title)
	assert.Equal(t, domain.PriorityHigh, active[0].Priority)
	assert.Equal(t, ToastSuccess, lastToast(t, m).Level)
}

func TestCreateTask_EmptyTitleWarns(t *testing.T) {
	m := newTestModel(t)

	m = send(m, overlay.TaskCreatedMsg{Title: "   "})

	assert.Equal(t, 0, m.session.Len())
	toast := lastToast(t, m)
	assert.Equal(t, ToastWarning, toast.Level)
	assert.Equal(t, "title cannot be empty", toast.Message)
}

func TestCompleteTask_Immediate(t *testing.T) {
	m := newTestModel(t)
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Water plants"})

	m = press(m, "x")

	assert.Equal(t, 0, m.tasks.Len())
	completed := m.session.SelectArchiveCompleted()
	require.Len(t, completed, 1)
	assert.Equal(t, task.ID, completed[0].ID)
	assert.Equal(t, 1, m.session.Rewards().Used)
	assert.Empty(t, m.editor.Pending(), "an immediate completion leaves nothing pending")
}

func TestCompleteTask_DelayIgnoresRepeatedPresses(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) { cfg.SetCompleteDelay(time.Second) })
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Water plants"})

	next, cmd := m.Update(keyMsg("x"))
	m = next.(Model)
	require.NotNil(t, cmd, "completion waits for a tick")
	assert.True(t, m.editor.IsPending(task.ID))
	assert.Equal(t, 1, m.tasks.Len(), "row stays until the delay ends")

	next, cmd = m.Update(keyMsg("x"))
	m = next.(Model)
	assert.Nil(t, cmd, "second press while pending is ignored")

	m = send(m, completeDueMsg{id: task.ID})
	assert.False(t, m.editor.IsPending(task.ID))
	assert.Equal(t, 0, m.tasks.Len())
	assert.Equal(t, 1, m.session.Rewards().Used, "rewarded once")
}

func TestCompleteTask_DeletedWhilePending(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) { cfg.SetCompleteDelay(time.Second) })
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Water plants"})

	m = send(m, keyMsg("x"))
	m = press(m, "d", "y")
	m = send(m, completeDueMsg{id: task.ID})

	got, err := m.session.Task(task.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.DeletedAt)
	assert.Nil(t, got.CompletedAt)
	assert.Equal(t, 0, m.session.Rewards().Used)
}

func TestCompleteTask_StageGrownPopup(t *testing.T) {
	m := newTestModel(t)
	for _, title := range []string{"a", "b", "c"} {
		m, _ = addTask(t, m, overlay.TaskCreatedMsg{Title: title})
	}

	m = press(m, "x", "x")
	assert.True(t, m.overlayStack.IsEmpty())

	m = press(m, "x")
	popup, ok := m.overlayStack.Current().(*overlay.InfoPopup)
	require.True(t, ok, "third completion grows the tree")
	assert.Contains(t, popup.View(), "You are now at stage 1!")
	assert.Contains(t, lastToast(t, m).Message, "stage 1")
	assert.Equal(t, 1, m.session.Rewards().Stage)

	m = press(m, "enter")
	assert.True(t, m.overlayStack.IsEmpty())
}

func TestDeleteTask_ConfirmAndCancel(t *testing.T) {
	m := newTestModel(t)
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Old chore"})

	m = press(m, "d")
	dialog, ok := m.overlayStack.Current().(*overlay.ConfirmDialog)
	require.True(t, ok)
	assert.Contains(t, dialog.View(), `Are you sure you want to delete "Old chore"?`)

	m = press(m, "n")
	assert.True(t, m.overlayStack.IsEmpty())
	assert.Equal(t, 1, m.tasks.Len(), "cancel keeps the task")

	m = press(m, "d", "y")
	assert.True(t, m.overlayStack.IsEmpty())
	assert.Equal(t, 0, m.tasks.Len())
	deleted := m.session.SelectArchiveDeleted()
	require.Len(t, deleted, 1)
	assert.Equal(t, task.ID, deleted[0].ID)
}

func TestActionMenu(t *testing.T) {
	m := newTestModel(t)
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Plan trip"})

	m = press(m, " ")
	_, ok := m.overlayStack.Current().(*overlay.ActionMenu)
	require.True(t, ok)

	m = press(m, "e")
	panel, ok := m.overlayStack.Current().(*overlay.DetailPanel)
	require.True(t, ok, "e opens details")
	assert.Equal(t, task.ID, panel.TaskID())
	assert.Equal(t, 1, m.overlayStack.Len(), "action menu is gone")
}

func TestDetails_EditingContext(t *testing.T) {
	m := newTestModel(t)
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Plan trip"})

	m = press(m, "enter")
	_, ok := m.overlayStack.Current().(*overlay.DetailPanel)
	require.True(t, ok)
	editing, open := m.session.Editing()
	require.True(t, open)
	assert.Equal(t, task.ID, editing)

	m = send(m, overlay.SubtaskAddedMsg{TaskID: task.ID, Title: "Book flights"})
	got, err := m.session.Task(task.ID)
	require.NoError(t, err)
	require.Len(t, got.Subtasks, 1)
	assert.Contains(t, m.overlayStack.Current().View(), "Book flights", "panel shows the new subtask")

	m = send(m, overlay.SubtaskToggledMsg{TaskID: task.ID, SubtaskID: got.Subtasks[0].ID, Checked: true})
	got, _ = m.session.Task(task.ID)
	assert.True(t, got.Subtasks[0].Done())

	m = press(m, "esc")
	assert.True(t, m.overlayStack.IsEmpty())
	_, open = m.session.Editing()
	assert.False(t, open, "closing details leaves edit mode")
}

func TestAddSubtask_WithoutOpenTaskWarns(t *testing.T) {
	m := newTestModel(t)
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Plan trip"})

	m = send(m, overlay.SubtaskAddedMsg{TaskID: task.ID, Title: "Book flights"})

	got, _ := m.session.Task(task.ID)
	assert.Empty(t, got.Subtasks)
	toast := lastToast(t, m)
	assert.Equal(t, ToastWarning, toast.Level)
	assert.Equal(t, "select a task first", toast.Message)
}

func TestDetails_EditSaves(t *testing.T) {
	m := newTestModel(t)
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Plan trip"})
	m = press(m, "enter")

	m = send(m, overlay.TaskEditedMsg{ID: task.ID, Edit: sessionEdit("Plan summer trip", "2")})
	m = send(m, overlay.CloseOverlayMsg{})

	got, _ := m.session.Task(task.ID)
	assert.Equal(t, "Plan summer trip", got.Title)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
	assert.True(t, m.overlayStack.IsEmpty())
}

func TestDetails_ClosedWhenEditedTaskCompletes(t *testing.T) {
	m := newTestModel(t, func(cfg *config.Config) { cfg.SetCompleteDelay(time.Second) })
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Plan trip"})

	m = send(m, keyMsg("x"))
	m = press(m, "enter")
	require.Equal(t, 1, m.overlayStack.Len())

	m = send(m, completeDueMsg{id: task.ID})

	assert.True(t, m.overlayStack.IsEmpty(), "details for a completed task close")
	_, open := m.session.Editing()
	assert.False(t, open)
}

func TestDetails_DeleteFromPanel(t *testing.T) {
	m := newTestModel(t)
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "Plan trip"})
	m = press(m, "enter")

	m = send(m, overlay.DeleteRequestedMsg{TaskID: task.ID, Title: task.Title})
	_, ok := m.overlayStack.Current().(*overlay.ConfirmDialog)
	require.True(t, ok)

	m = press(m, "y")
	assert.True(t, m.overlayStack.IsEmpty(), "confirm and details both close")
	_, open := m.session.Editing()
	assert.False(t, open)
}

func TestCategoryFlow(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "n")
	m = send(m, overlay.NewCategoryRequestedMsg{})
	_, ok := m.overlayStack.Current().(*overlay.CategoryPrompt)
	require.True(t, ok)

	m = send(m, overlay.CategoryCreatedMsg{Name: "add-new"})
	prompt, ok := m.overlayStack.Current().(*overlay.CategoryPrompt)
	require.True(t, ok, "rejected names keep the prompt open")
	assert.Contains(t, prompt.View(), "choose a different name")

	m = send(m, overlay.CategoryCreatedMsg{Name: "Garden"})
	form, ok := m.overlayStack.Current().(*overlay.CreateTaskOverlay)
	require.True(t, ok, "prompt closes back to the form")
	assert.Contains(t, form.View(), "Garden", "new category is selected")
	assert.Equal(t, []string{"Garden"}, m.session.Categories())
}

func TestFilterAndSortMenus(t *testing.T) {
	m := newTestModel(t)
	today := domain.DateOf(testNow)
	soon, later := today.AddDays(2), today.AddDays(20)
	m, _ = addTask(t, m, overlay.TaskCreatedMsg{Title: "later", DueDate: &later, Priority: domain.PriorityHigh})
	m, _ = addTask(t, m, overlay.TaskCreatedMsg{Title: "soon", DueDate: &soon, Priority: domain.PriorityLow})
	m, _ = addTask(t, m, overlay.TaskCreatedMsg{Title: "undated"})

	m = press(m, "f", "d", "w", "esc")
	assert.Equal(t, domain.DueIn1Week, m.editor.GetFilter().DueWithin)
	require.Equal(t, 1, m.tasks.Len())
	current, _ := m.tasks.Current()
	assert.Equal(t, "soon", current.Title)

	m = press(m, "F")
	assert.Equal(t, 3, m.tasks.Len())

	m = press(m, "s", "d", "esc")
	assert.Equal(t, domain.SortByDueDate, m.editor.GetSort().Field)
	current, _ = m.tasks.Current()
	assert.Equal(t, "soon", current.Title)
	m.tasks.GotoBottom()
	current, _ = m.tasks.Current()
	assert.Equal(t, "undated", current.Title, "undated tasks sort last")
}

func TestArchive_UncompleteAndRestore(t *testing.T) {
	m := newTestModel(t)
	m, done := addTask(t, m, overlay.TaskCreatedMsg{Title: "done one"})
	m, gone := addTask(t, m, overlay.TaskCreatedMsg{Title: "gone one"})
	m = press(m, "x")
	m = press(m, "d", "y")

	m = press(m, "tab")
	require.Equal(t, types.PageArchive, m.editor.GetPage())
	require.Equal(t, 2, m.archive.Len())

	// Deleted row, restore as completed
	m = press(m, "j", " ", "r")
	got, _ := m.session.Task(gone.ID)
	assert.Nil(t, got.DeletedAt)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, 1, m.session.Rewards().Used, "restoring as completed earns nothing")

	m = press(m, "g", "u")
	got, _ = m.session.Task(done.ID)
	assert.Nil(t, got.CompletedAt)

	m = press(m, "tab")
	assert.Equal(t, types.PageTasks, m.editor.GetPage())
	assert.Equal(t, 1, m.tasks.Len())
}

func TestArchive_RestoreAsActive(t *testing.T) {
	m := newTestModel(t)
	m, task := addTask(t, m, overlay.TaskCreatedMsg{Title: "gone one"})
	m = press(m, "d", "y", "tab")

	_, section, ok := m.archive.Current()
	require.True(t, ok)
	require.Equal(t, archive.SectionDeleted, section)

	m = press(m, "u")
	got, _ := m.session.Task(task.ID)
	assert.NotNil(t, got.DeletedAt, "uncomplete does nothing on deleted rows")

	m = press(m, "r")
	got, _ = m.session.Task(task.ID)
	assert.True(t, got.IsActive())
}

func TestThemeKey(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, "orange", styles.Active().Name)

	m = press(m, "t")

	assert.Equal(t, "green", styles.Active().Name)
	assert.Equal(t, "green", m.config.UI.Theme)
	assert.Equal(t, "green", m.styles.Theme.Name)
}

func TestSettings_DelayAndSave(t *testing.T) {
	m := newTestModel(t)

	m = press(m, ",")
	_, ok := m.overlayStack.Current().(*overlay.SettingsOverlay)
	require.True(t, ok)

	m = press(m, "j", "l")
	assert.Equal(t, 500*time.Millisecond, m.config.CompleteDelay())

	m = send(m, overlay.SelectionMsg{Key: overlay.SettingKeySave})
	assert.True(t, m.overlayStack.IsEmpty())

	data, err := os.ReadFile(m.configPath)
	require.NoError(t, err)
	saved, err := config.ParseVersionedConfig(data)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, saved.CompleteDelay())
}

func TestToastsExpire(t *testing.T) {
	m := newTestModel(t)
	m = send(m, overlay.TaskCreatedMsg{Title: ""})
	require.Len(t, m.toasts, 1)

	clock := testNow.Add(time.Minute)
	m.now = func() time.Time { return clock }
	m = send(m, tickMsg(clock))

	assert.Empty(t, m.toasts)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFinishComplete_UnknownTask(t *testing.T) {
	m := newTestModel(t)
	id := uuid.New()
	m.editor.MarkPending(id)

	m = send(m, completeDueMsg{id: id})

	assert.Equal(t, ToastError, lastToast(t, m).Level)
}
