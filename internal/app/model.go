// Package app contains the main application model and TEA implementation.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/config"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/services/editor"
	"github.com/riordanpawley/grove/internal/services/navigation"
	"github.com/riordanpawley/grove/internal/session"
	"github.com/riordanpawley/grove/internal/types"
	"github.com/riordanpawley/grove/internal/ui/archive"
	"github.com/riordanpawley/grove/internal/ui/markdown"
	"github.com/riordanpawley/grove/internal/ui/overlay"
	"github.com/riordanpawley/grove/internal/ui/statusbar"
	"github.com/riordanpawley/grove/internal/ui/styles"
	"github.com/riordanpawley/grove/internal/ui/tasklist"
	"github.com/riordanpawley/grove/internal/ui/toast"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// SampleTaskTitle is the task seeded into a fresh session
const SampleTaskTitle = "sample task"

// Options configures a Model beyond the loaded config
type Options struct {
	Logger *slog.Logger
	// ConfigPath is where settings are saved; empty means .grove.yaml in the
	// working directory
	ConfigPath string
	Clock      session.Clock
	Now        func() time.Time
}

// eventInbox collects session events between updates. The model is copied
// on every Update, so listeners write to this shared box instead.
type eventInbox struct {
	events []session.Event
}

func (b *eventInbox) push(ev session.Event) {
	b.events = append(b.events, ev)
}

func (b *eventInbox) drain() []session.Event {
	evs := b.events
	b.events = nil
	return evs
}

// Model is the main application state
type Model struct {
	// Core data
	session *session.Session
	inbox   *eventInbox

	// Page, filter, sort and pending completions
	editor *editor.Service
	nav    *navigation.Service

	// UI state
	tasks        *tasklist.View
	archive      *archive.View
	overlayStack *overlay.Stack
	notes        *markdown.Renderer

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	// Styles
	styles *styles.Styles

	// Configuration
	config     *config.Config
	configPath string

	logger *slog.Logger
	now    func() time.Time
}

// New creates a new application model with the given config
func New(cfg *config.Config, opts Options) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.FileName
	}

	if theme, err := styles.LookupTheme(cfg.UI.Theme); err == nil {
		styles.SetTheme(theme)
	} else {
		opts.Logger.Warn("unknown theme, using default", "theme", cfg.UI.Theme)
	}
	s := styles.New()

	sess := session.New(session.Options{
		TasksPerStage: cfg.Rewards.TasksPerStage,
		Clock:         opts.Clock,
		Logger:        opts.Logger,
	})
	inbox := &eventInbox{}
	sess.Subscribe(inbox.push)

	for _, name := range cfg.Categories {
		if _, err := sess.AddCategory(name); err != nil {
			opts.Logger.Warn("skipping configured category", "name", name, "error", err)
		}
	}
	if cfg.ShouldSeedSampleTask() {
		if _, err := sess.AddTask(SampleTaskTitle); err != nil {
			opts.Logger.Error("failed to seed sample task", "error", err)
		}
	}
	inbox.drain()

	m := Model{
		session:      sess,
		inbox:        inbox,
		editor:       editor.NewService(),
		nav:          navigation.NewService(),
		tasks:        tasklist.New(s, 80, 20),
		archive:      archive.New(s, 80),
		overlayStack: overlay.NewStack(),
		notes:        markdown.NewRenderer(),
		toasts:       []Toast{},
		styles:       s,
		config:       cfg,
		configPath:   opts.ConfigPath,
		logger:       opts.Logger,
		now:          opts.Now,
	}
	m.refresh()
	return m
}

// Session exposes the underlying session
func (m Model) Session() *session.Session {
	return m.session
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tickEvery(time.Second)
}

// Message types

type tickMsg time.Time

// completeDueMsg fires once a pending completion has waited out the delay
type completeDueMsg struct {
	id uuid.UUID
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case tickMsg:
		m.toasts = types.PruneToasts(m.toasts, m.now())
		return m, tickEvery(time.Second)

	case completeDueMsg:
		// Deleted while pending
		if !m.editor.ClearPending(msg.id) {
			return m, nil
		}
		return m.finishComplete(msg.id)

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.popOverlay()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.TaskCreatedMsg:
		task, err := m.session.AddTask(msg.Title, msg.Options()...)
		if err != nil {
			return m.fail(err)
		}
		m.addToast(ToastSuccess, fmt.Sprintf("Added %q", task.Title))
		return m.afterCommand()

	case overlay.TaskEditedMsg:
		if err := m.session.EditTask(msg.ID, msg.Edit); err != nil {
			return m.fail(err)
		}
		return m.afterCommand()

	case overlay.SubtaskAddedMsg:
		if _, err := m.session.AddSubtask(msg.TaskID, msg.Title); err != nil {
			return m.fail(err)
		}
		return m.afterCommand()

	case overlay.SubtaskToggledMsg:
		if err := m.session.ToggleSubtask(msg.TaskID, msg.SubtaskID, msg.Checked); err != nil {
			return m.fail(err)
		}
		return m.afterCommand()

	case overlay.DeleteRequestedMsg:
		return m, m.overlayStack.Push(overlay.NewDeleteConfirm(msg.TaskID, msg.Title))

	case overlay.NewCategoryRequestedMsg:
		return m, m.overlayStack.Push(overlay.NewCategoryPrompt())

	case overlay.CategoryCreatedMsg:
		return m.handleCategoryCreated(msg)
	}

	// Forward anything else (cursor blink and the like) to the top overlay
	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input for the current page
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work on every page)
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	case "tab":
		m.editor.NextPage()
		m.refresh()
		m.layout()
		return m, nil
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	case "t":
		return m.applyTheme(styles.NextTheme(styles.Active().Name))
	case ",", "S":
		return m, m.overlayStack.Push(overlay.NewSettingsOverlay(styles.Active().Name, m.config.CompleteDelay()))
	case "C":
		return m, m.overlayStack.Push(overlay.NewCategoryPrompt())
	}

	if m.editor.GetPage() == types.PageArchive {
		return m.handleArchiveKey(msg)
	}
	return m.handleTasksKey(msg)
}

// handleTasksKey processes keyboard input on the active task list
func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	// Vertical navigation
	case "j", "down":
		m.tasks.MoveDown(1)
	case "k", "up":
		m.tasks.MoveUp(1)
	case "ctrl+d":
		m.tasks.MoveDown(m.halfPage())
	case "ctrl+u":
		m.tasks.MoveUp(m.halfPage())
	case "g", "home":
		m.tasks.GotoTop()
	case "G", "end":
		m.tasks.GotoBottom()

	case "n":
		return m, m.overlayStack.Push(overlay.NewCreateTaskOverlay(m.session.Categories()))

	case "enter", "e":
		if task, ok := m.tasks.Current(); ok {
			return m.openDetails(task.ID)
		}

	case "x":
		if task, ok := m.tasks.Current(); ok {
			return m.startComplete(task.ID)
		}

	case "d":
		if task, ok := m.tasks.Current(); ok {
			return m, m.overlayStack.Push(overlay.NewDeleteConfirm(task.ID, task.Title))
		}

	case " ":
		if task, ok := m.tasks.Current(); ok {
			return m, m.overlayStack.Push(overlay.NewActionMenu(task, m.editor.IsPending(task.ID)))
		}

	case "f":
		return m, m.overlayStack.Push(overlay.NewFilterMenu(m.editor, m.session.Categories()))

	case "s":
		return m, m.overlayStack.Push(overlay.NewSortMenu(m.editor))

	case "F":
		m.editor.ClearView()
		m.refresh()
		m.addToast(ToastInfo, "Filter and sort cleared")
	}

	return m, nil
}

// handleArchiveKey processes keyboard input on the archive page
func (m Model) handleArchiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.archive.MoveDown(1)
		return m, nil
	case "k", "up":
		m.archive.MoveUp(1)
		return m, nil
	case "g", "home":
		m.archive.SetCursor(0)
		return m, nil
	case "G", "end":
		m.archive.SetCursor(m.archive.Len() - 1)
		return m, nil
	case " ":
		m.archive.ToggleRestoreAsCompleted()
		return m, nil
	}

	task, section, ok := m.archive.Current()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "u":
		if section != archive.SectionCompleted {
			return m, nil
		}
		if err := m.session.UncompleteTask(task.ID); err != nil {
			return m.fail(err)
		}
		m.addToast(ToastInfo, fmt.Sprintf("%q is active again", task.Title))
		return m.afterCommand()

	case "d":
		if section != archive.SectionCompleted {
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewDeleteConfirm(task.ID, task.Title))

	case "r":
		if section != archive.SectionDeleted {
			return m, nil
		}
		asCompleted := m.archive.RestoreAsCompleted(task.ID)
		if err := m.session.UndeleteTask(task.ID, asCompleted); err != nil {
			return m.fail(err)
		}
		where := "the task list"
		if asCompleted {
			where = "completed"
		}
		m.addToast(ToastInfo, fmt.Sprintf("Restored %q to %s", task.Title, where))
		return m.afterCommand()
	}

	return m, nil
}

// handleSelection handles overlay selection messages
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	switch current := m.overlayStack.Current().(type) {
	case *overlay.ConfirmDialog:
		m.overlayStack.Pop()
		result, ok := msg.Value.(overlay.ConfirmResult)
		if !ok || !result.Confirmed {
			return m, nil
		}
		if target, ok := result.Payload.(overlay.DeleteTarget); ok {
			return m.deleteTask(target)
		}
		return m, nil

	case *overlay.FilterMenu, *overlay.SortMenu:
		// Both menus edit the shared filter and sort in place
		m.refresh()
		return m, nil

	case *overlay.ActionMenu:
		m.overlayStack.Pop()
		id, _ := msg.Value.(uuid.UUID)
		switch msg.Key {
		case overlay.ActionOpen:
			return m.openDetails(id)
		case overlay.ActionComplete:
			return m.startComplete(id)
		case overlay.ActionDelete:
			task, err := m.session.Task(id)
			if err != nil {
				return m.fail(err)
			}
			return m, m.overlayStack.Push(overlay.NewDeleteConfirm(task.ID, task.Title))
		}
		return m, nil

	case *overlay.SettingsOverlay:
		return m.handleSetting(msg, current)
	}

	return m, nil
}

// handleSetting applies one change from the settings overlay
func (m Model) handleSetting(msg overlay.SelectionMsg, settings *overlay.SettingsOverlay) (tea.Model, tea.Cmd) {
	switch msg.Key {
	case overlay.SettingKeyTheme:
		name, _ := msg.Value.(string)
		theme, err := styles.LookupTheme(name)
		if err != nil {
			return m.fail(err)
		}
		return m.applyTheme(theme)

	case overlay.SettingKeyDelay:
		raw, _ := msg.Value.(string)
		d, err := time.ParseDuration(raw)
		if err != nil {
			return m.fail(err)
		}
		m.config.SetCompleteDelay(d)
		m.logger.Debug("completion delay changed", "delay", d)
		return m, nil

	case overlay.SettingKeySave:
		if err := m.saveConfig(); err != nil {
			m.logger.Error("failed to save config", "path", m.configPath, "error", err)
			return m.fail(err)
		}
		m.overlayStack.Pop()
		m.addToast(ToastSuccess, "Settings saved to "+m.configPath)
		return m, nil
	}

	m.logger.Debug("unhandled setting", "key", msg.Key, "value", settings.Value(msg.Key))
	return m, nil
}

// handleCategoryCreated registers a category from the prompt and hands it to
// the form that asked for it
func (m Model) handleCategoryCreated(msg overlay.CategoryCreatedMsg) (tea.Model, tea.Cmd) {
	names, err := m.session.AddCategory(msg.Name)
	if err != nil {
		if prompt, ok := m.overlayStack.Current().(*overlay.CategoryPrompt); ok {
			prompt.SetError(errorText(err))
			return m, nil
		}
		return m.fail(err)
	}

	if _, ok := m.overlayStack.Current().(*overlay.CategoryPrompt); ok {
		m.overlayStack.Pop()
	}
	name := strings.TrimSpace(msg.Name)
	if form, ok := m.overlayStack.Current().(overlay.CategoryAware); ok {
		form.SetCategories(names, name)
	}
	m.addToast(ToastSuccess, fmt.Sprintf("Category %q added", name))
	return m.afterCommand()
}

// openDetails shows the details overlay and marks the task as edited
func (m Model) openDetails(id uuid.UUID) (tea.Model, tea.Cmd) {
	task, err := m.session.Task(id)
	if err != nil {
		return m.fail(err)
	}
	if err := m.session.OpenForEdit(id); err != nil {
		return m.fail(err)
	}
	panel := overlay.NewDetailPanel(task, m.session.Categories(), m.notes)
	return m, m.overlayStack.Push(panel)
}

// startComplete checks a task's done box. The task leaves the list after
// the configured delay; presses while it is pending are ignored.
func (m Model) startComplete(id uuid.UUID) (tea.Model, tea.Cmd) {
	if !m.editor.MarkPending(id) {
		return m, nil
	}
	delay := m.config.CompleteDelay()
	if delay <= 0 {
		m.editor.ClearPending(id)
		return m.finishComplete(id)
	}

	m.tasks.SetPending(m.editor.Pending())
	return m, tea.Tick(delay, func(time.Time) tea.Msg {
		return completeDueMsg{id: id}
	})
}

// finishComplete runs the completion command for id
func (m Model) finishComplete(id uuid.UUID) (tea.Model, tea.Cmd) {
	m.tasks.SetPending(m.editor.Pending())
	transitioned, err := m.session.CompleteTask(id)
	if err != nil {
		return m.fail(err)
	}
	if transitioned {
		m.addToast(ToastSuccess, "Task done")
	}
	return m.afterCommand()
}

// deleteTask moves a confirmed task to the deleted archive
func (m Model) deleteTask(target overlay.DeleteTarget) (tea.Model, tea.Cmd) {
	if err := m.session.DeleteTask(target.TaskID); err != nil {
		return m.fail(err)
	}
	m.editor.ClearPending(target.TaskID)
	m.addToast(ToastInfo, fmt.Sprintf("Deleted %q", target.Title))
	return m.afterCommand()
}

// afterCommand reacts to the events a successful command emitted
func (m Model) afterCommand() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, ev := range m.inbox.drain() {
		switch ev := ev.(type) {
		case session.TaskListChanged:
			m.syncDetails(ev)
		case session.StageGrown:
			m.addToast(ToastSuccess, fmt.Sprintf("Your tree reached stage %d", ev.Stage))
			cmds = append(cmds, m.overlayStack.Push(overlay.NewStagePopup(ev.Stage)))
		}
	}
	m.refresh()
	return m, tea.Batch(cmds...)
}

// syncDetails keeps an open details overlay in step with the session
func (m Model) syncDetails(ev session.TaskListChanged) {
	switch ev.Op {
	case session.OpComplete, session.OpDelete:
		// The edited task left the active list; its editor goes with it
		m.overlayStack.RemoveWhere(func(o overlay.Overlay) bool {
			panel, ok := o.(*overlay.DetailPanel)
			return ok && panel.TaskID() == ev.TaskID
		})
		return
	case session.OpCategory:
		return
	}

	task, err := m.session.Task(ev.TaskID)
	if err != nil {
		return
	}
	m.overlayStack.Each(func(o overlay.Overlay) {
		if panel, ok := o.(*overlay.DetailPanel); ok {
			panel.SetTask(task)
		}
	})
}

// popOverlay closes the top overlay, leaving edit mode with the details panel
func (m *Model) popOverlay() {
	if _, ok := m.overlayStack.Pop().(*overlay.DetailPanel); ok {
		m.session.CloseEdit()
	}
}

// applyTheme switches the active theme and rebuilds the styles
func (m Model) applyTheme(theme styles.Theme) (tea.Model, tea.Cmd) {
	styles.SetTheme(theme)
	m.config.UI.Theme = theme.Name
	m.styles = styles.New()
	m.tasks.SetStyles(m.styles)
	m.archive.SetStyles(m.styles)
	m.logger.Debug("theme changed", "theme", theme.Name)
	return m, nil
}

// saveConfig writes the current config to the config path
func (m Model) saveConfig() error {
	data, err := config.MarshalVersionedConfig(m.config)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(m.configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}
	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// refresh recomputes both pages from the session, keeping each cursor on
// the task it was on
func (m Model) refresh() {
	if t, ok := m.tasks.Current(); ok {
		m.nav.Track(types.PageTasks, t.ID, m.tasks.Cursor())
	}
	if t, _, ok := m.archive.Current(); ok {
		m.nav.Track(types.PageArchive, t.ID, m.archive.Cursor())
	}

	active := m.session.SelectActive(m.editor.GetFilter(), m.editor.GetSort())
	m.tasks.SetTasks(active, m.session.Today())
	m.tasks.SetPending(m.editor.Pending())
	m.tasks.SetCursor(m.nav.Restore(types.PageTasks, active))

	completed, deleted := m.session.SelectArchiveCompleted(), m.session.SelectArchiveDeleted()
	m.archive.SetTasks(completed, deleted)
	m.archive.SetCursor(m.nav.Restore(types.PageArchive, append(completed, deleted...)))
}

// fail reports a rejected command as a toast
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	level := ToastError
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrPrecondition) {
		level = ToastWarning
	}
	m.inbox.drain()
	m.addToast(level, errorText(err))
	return m, nil
}

// errorText turns an error into a short user-facing message
func errorText(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%s %s", verr.Field, verr.Reason)
	}
	var perr *domain.PreconditionError
	if errors.As(err, &perr) && perr.Reason != "" {
		return perr.Reason
	}
	return err.Error()
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level ToastLevel, message string) {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now()))
}

// halfPage calculates half-page scroll distance based on terminal height
func (m Model) halfPage() int {
	return max(1, m.bodyHeight()/2)
}

// layout pushes the terminal size into the views
func (m Model) layout() {
	m.tasks.SetDimensions(m.width, m.bodyHeight())
	m.archive.SetWidth(m.width)
}

// bodyHeight is the height left for the page between header and status bar
func (m Model) bodyHeight() int {
	return max(3, m.height-1-lipgloss.Height(m.statusBar().Render()))
}

func (m Model) statusBar() statusbar.StatusBar {
	sb := statusbar.New(m.editor.GetPage(), m.width, m.styles).WithRewards(m.session.Rewards())
	if m.editor.GetPage() == types.PageTasks {
		sb = sb.WithView(m.editor)
	}
	return sb
}

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	statusBarView := m.statusBar().Render()

	var toastView string
	if len(m.toasts) > 0 {
		toastView = toast.New(m.styles).Render(m.toasts, m.width)
	}

	bodyHeight := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(statusBarView))
	if toastView != "" {
		bodyHeight = max(1, bodyHeight-lipgloss.Height(toastView))
	}

	var body string
	if !m.overlayStack.IsEmpty() {
		body = m.renderOverlay(bodyHeight)
	} else if m.editor.GetPage() == types.PageArchive {
		body = m.archive.Render()
	} else {
		body = m.tasks.Render()
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(clipLines(body, bodyHeight))

	parts := []string{header, body}
	if toastView != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView))
	}
	parts = append(parts, statusBarView)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the title and page tabs
func (m Model) renderHeader() string {
	tabs := make([]string, 0, 2)
	for _, p := range []types.Page{types.PageTasks, types.PageArchive} {
		count := m.tasks.Len()
		if p == types.PageArchive {
			count = m.archive.Len()
		}
		label := fmt.Sprintf("%s (%d)", strings.ToLower(p.String()), count)
		if p == m.editor.GetPage() {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		append([]string{m.styles.Header.Render("🌱 grove")}, tabs...)...)
}

// renderOverlay renders the top overlay centered in the body area
func (m Model) renderOverlay(height int) string {
	current := m.overlayStack.Current()
	overlayStyles := overlay.New()

	content := current.View()
	if title := current.Title(); title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, overlayStyles.Title.Render(title), content)
	}

	w, h := current.Size()
	w = min(w, max(10, m.width-2))
	box := overlayStyles.Overlay.Width(w).MaxHeight(max(3, min(h, height))).Render(content)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

// clipLines keeps at most n lines of s
func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
