// Package overlay implements the modal dialogs drawn over the task pages.
// Overlays never run commands themselves; they emit messages that the app
// model turns into session commands.
package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/session"
)

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CategoryAware is implemented by overlays that offer a category choice
type CategoryAware interface {
	SetCategories(names []string, selected string)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a menu choice is made
type SelectionMsg struct {
	Key   string
	Value any
}

// TaskCreatedMsg is emitted when the create form is submitted
type TaskCreatedMsg struct {
	Title    string
	Category string
	DueDate  *domain.Date
	Priority domain.Priority
	Notes    string
}

// Options converts the form values into task options
func (m TaskCreatedMsg) Options() []session.TaskOption {
	opts := []session.TaskOption{
		session.WithPriority(m.Priority),
		session.WithCategory(m.Category),
		session.WithNotes(m.Notes),
	}
	if m.DueDate != nil {
		opts = append(opts, session.WithDueDate(*m.DueDate))
	}
	return opts
}

// TaskEditedMsg is emitted when the edit form is saved
type TaskEditedMsg struct {
	ID   uuid.UUID
	Edit session.TaskEdit
}

// SubtaskAddedMsg asks for a subtask to be appended to the edited task
type SubtaskAddedMsg struct {
	TaskID uuid.UUID
	Title  string
}

// SubtaskToggledMsg asks for a subtask checkbox to be set
type SubtaskToggledMsg struct {
	TaskID    uuid.UUID
	SubtaskID uuid.UUID
	Checked   bool
}

// DeleteRequestedMsg asks for a delete confirmation
type DeleteRequestedMsg struct {
	TaskID uuid.UUID
	Title  string
}

// NewCategoryRequestedMsg asks for the category prompt to be opened
type NewCategoryRequestedMsg struct{}

// CategoryCreatedMsg is emitted when the category prompt is submitted
type CategoryCreatedMsg struct {
	Name string
}
