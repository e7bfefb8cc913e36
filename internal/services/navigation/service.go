// Package navigation provides cursor and navigation state management
package navigation

import (
	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/riordanpawley/grove/internal/types"
)

// Cursor tracks the selected task by ID (survives filter/sort changes)
type Cursor struct {
	TaskID   uuid.UUID // Primary state: selected task ID
	Fallback int       // Row to use when TaskID is gone
}

// Set updates the cursor to point to a specific task
func (c *Cursor) Set(taskID uuid.UUID, index int) {
	c.TaskID = taskID
	c.Fallback = index
}

// Find returns the row of the cursor's task in tasks. A task that left the
// list (completed, deleted, filtered out) hands its row to whatever slid
// into it.
func (c *Cursor) Find(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}

	if c.TaskID != uuid.Nil {
		for i, t := range tasks {
			if t.ID == c.TaskID {
				return i
			}
		}
	}

	return max(0, min(c.Fallback, len(tasks)-1))
}

// Service manages one cursor per page
type Service struct {
	cursors map[types.Page]*Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		cursors: map[types.Page]*Cursor{
			types.PageTasks:   {},
			types.PageArchive: {},
		},
	}
}

// GetCursor returns the cursor for page
func (s *Service) GetCursor(page types.Page) *Cursor {
	c, ok := s.cursors[page]
	if !ok {
		c = &Cursor{}
		s.cursors[page] = c
	}
	return c
}

// Track records the task under the cursor before the list changes
func (s *Service) Track(page types.Page, taskID uuid.UUID, index int) {
	s.GetCursor(page).Set(taskID, index)
}

// Restore finds where the tracked task ended up in the new rows
func (s *Service) Restore(page types.Page, tasks []domain.Task) int {
	c := s.GetCursor(page)
	idx := c.Find(tasks)
	if idx < len(tasks) {
		c.Set(tasks[idx].ID, idx)
	}
	return idx
}
