package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/domain"
)

// TaskOption sets an optional field on a new task
type TaskOption func(*domain.Task)

// WithCategory files the task under a category name
func WithCategory(name string) TaskOption {
	return func(t *domain.Task) { t.Category = strings.TrimSpace(name) }
}

// WithDueDate sets the due date
func WithDueDate(d domain.Date) TaskOption {
	return func(t *domain.Task) { t.DueDate = &d }
}

// WithPriority sets the priority
func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) { t.Priority = p }
}

// WithNotes sets the notes
func WithNotes(notes string) TaskOption {
	return func(t *domain.Task) { t.Notes = strings.TrimSpace(notes) }
}

// TaskEdit carries the fields overwritten by EditTask. Priority is raw input
// and is coerced with domain.ParsePriority.
type TaskEdit struct {
	Title    string
	Category string
	DueDate  *domain.Date
	Notes    string
	Priority string
}

func (s *Session) reject(op Op, err error) error {
	s.logger.Warn("command rejected", "op", op, "error", err)
	return err
}

func emptyTitle(field string) error {
	return &domain.ValidationError{Field: field, Reason: "cannot be empty"}
}

// AddTask creates an active task and appends it to the store
func (s *Session) AddTask(title string, opts ...TaskOption) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, s.reject(OpAdd, emptyTitle("title"))
	}

	task := &domain.Task{
		Title:     title,
		Priority:  domain.PriorityNone,
		CreatedAt: s.clock.Now(),
	}
	for _, opt := range opts {
		opt(task)
	}

	// A colliding identity is regenerated rather than surfaced
	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		task.ID = s.newID()
		if err = s.store.Add(task); !errors.Is(err, domain.ErrDuplicateIdentity) {
			break
		}
		s.logger.Debug("task identity collided, regenerating", "attempt", attempt+1)
	}
	if err != nil {
		return domain.Task{}, s.reject(OpAdd, fmt.Errorf("add task: %w", err))
	}

	s.logger.Debug("task added", "id", task.ID, "seq", task.Seq, "title", task.Title)
	s.changed(OpAdd, task.ID)
	return task.Clone(), nil
}

// OpenForEdit marks a task as the one being edited
func (s *Session) OpenForEdit(id uuid.UUID) error {
	if _, err := s.store.Find(id); err != nil {
		return err
	}
	s.editing = id
	return nil
}

// CloseEdit leaves editing mode
func (s *Session) CloseEdit() {
	s.editing = uuid.Nil
}

// Editing returns the identity of the task open for editing
func (s *Session) Editing() (uuid.UUID, bool) {
	return s.editing, s.editing != uuid.Nil
}

func (s *Session) closeEditIf(id uuid.UUID) {
	if s.editing == id {
		s.CloseEdit()
	}
}

// AddSubtask appends a subtask to the task currently open for editing
func (s *Session) AddSubtask(taskID uuid.UUID, title string) (domain.Subtask, error) {
	if s.editing == uuid.Nil || s.editing != taskID {
		return domain.Subtask{}, s.reject(OpAddSubtask, &domain.PreconditionError{
			Op:     "add subtask",
			Reason: "select a task first",
		})
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Subtask{}, s.reject(OpAddSubtask, emptyTitle("subtask"))
	}

	task, err := s.store.Find(taskID)
	if err != nil {
		return domain.Subtask{}, s.reject(OpAddSubtask, err)
	}

	sub := domain.Subtask{
		ID:        s.newID(),
		Title:     title,
		CreatedAt: s.clock.Now(),
	}
	task.Subtasks = append(task.Subtasks, sub)

	s.logger.Debug("subtask added", "task", taskID, "subtask", sub.ID)
	s.changed(OpAddSubtask, taskID)
	return sub, nil
}

// EditTask overwrites a task's editable fields. Nothing is written unless
// every field validates.
func (s *Session) EditTask(id uuid.UUID, edit TaskEdit) error {
	task, err := s.store.Find(id)
	if err != nil {
		return s.reject(OpEdit, err)
	}

	title := strings.TrimSpace(edit.Title)
	if title == "" {
		return s.reject(OpEdit, emptyTitle("title"))
	}

	task.Title = title
	task.Category = strings.TrimSpace(edit.Category)
	task.DueDate = nil
	if edit.DueDate != nil {
		d := *edit.DueDate
		task.DueDate = &d
	}
	task.Notes = strings.TrimSpace(edit.Notes)
	task.Priority = domain.ParsePriority(edit.Priority)

	s.logger.Debug("task edited", "id", id, "priority", task.Priority)
	s.changed(OpEdit, id)
	return nil
}

// CompleteTask marks a task complete. Completing an already complete task
// is a no-op and reports false; only the first completion counts toward
// rewards.
func (s *Session) CompleteTask(id uuid.UUID) (bool, error) {
	task, err := s.store.Find(id)
	if err != nil {
		return false, s.reject(OpComplete, err)
	}
	if task.CompletedAt != nil {
		return false, nil
	}

	now := s.clock.Now()
	task.CompletedAt = &now
	s.closeEditIf(id)

	s.logger.Debug("task completed", "id", id)
	s.changed(OpComplete, id)

	if ev, grown := s.rewards.OnTaskCompleted(); grown {
		s.logger.Info("tree grew", "stage", ev.Stage)
		s.emit(StageGrown(ev))
	}
	return true, nil
}

// UncompleteTask returns a completed task to the active list. Rewards
// already earned are kept.
func (s *Session) UncompleteTask(id uuid.UUID) error {
	task, err := s.store.Find(id)
	if err != nil {
		return s.reject(OpUncomplete, err)
	}

	task.CompletedAt = nil

	s.logger.Debug("task uncompleted", "id", id)
	s.changed(OpUncomplete, id)
	return nil
}

// DeleteTask soft-deletes a task, overwriting any earlier deletion time.
// Callers are expected to have confirmed with the user.
func (s *Session) DeleteTask(id uuid.UUID) error {
	task, err := s.store.Find(id)
	if err != nil {
		return s.reject(OpDelete, err)
	}

	now := s.clock.Now()
	task.DeletedAt = &now
	s.closeEditIf(id)

	s.logger.Debug("task deleted", "id", id)
	s.changed(OpDelete, id)
	return nil
}

// UndeleteTask restores a deleted task, either as completed or as active
func (s *Session) UndeleteTask(id uuid.UUID, restoreAsCompleted bool) error {
	task, err := s.store.Find(id)
	if err != nil {
		return s.reject(OpUndelete, err)
	}

	task.DeletedAt = nil
	if restoreAsCompleted {
		now := s.clock.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	s.logger.Debug("task undeleted", "id", id, "as_completed", restoreAsCompleted)
	s.changed(OpUndelete, id)
	return nil
}

// ToggleSubtask checks or unchecks a subtask. Checking an already checked
// subtask keeps its original completion time.
func (s *Session) ToggleSubtask(taskID, subtaskID uuid.UUID, checked bool) error {
	task, err := s.store.Find(taskID)
	if err != nil {
		return s.reject(OpSubtask, err)
	}
	i := task.FindSubtask(subtaskID)
	if i < 0 {
		return s.reject(OpSubtask, &domain.LookupError{
			Op:  "toggle subtask",
			ID:  subtaskID.String(),
			Err: domain.ErrNotFound,
		})
	}

	sub := &task.Subtasks[i]
	switch {
	case checked && sub.CompletedAt == nil:
		now := s.clock.Now()
		sub.CompletedAt = &now
	case !checked:
		sub.CompletedAt = nil
	}

	s.changed(OpSubtask, taskID)
	return nil
}

// AddCategory registers a new category name and returns the updated list
func (s *Session) AddCategory(name string) ([]string, error) {
	if err := s.categories.Add(name); err != nil {
		return s.categories.Names(), s.reject(OpCategory, err)
	}

	s.logger.Debug("category added", "name", strings.TrimSpace(name))
	s.changed(OpCategory, uuid.Nil)
	return s.categories.Names(), nil
}
