package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subtask is an independently completable child item of a task
type Subtask struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Done reports whether the subtask is checked off
func (s Subtask) Done() bool {
	return s.CompletedAt != nil
}

// Task is the aggregate root of the tracker.
//
// CompletedAt and DeletedAt double as status flags and audit timestamps.
// Use Bucket to classify a task instead of inspecting them directly.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Seq         uint64     `json:"seq"`
	Title       string     `json:"title"`
	Category    string     `json:"category,omitempty"`
	DueDate     *Date      `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority"`
	Notes       string     `json:"notes,omitempty"`
	Subtasks    []Subtask  `json:"subtasks,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Bucket returns the display bucket. Deletion takes precedence over
// completion.
func (t Task) Bucket() Bucket {
	switch {
	case t.DeletedAt != nil:
		return BucketDeleted
	case t.CompletedAt != nil:
		return BucketCompleted
	default:
		return BucketActive
	}
}

// IsActive returns true if the task is neither completed nor deleted
func (t Task) IsActive() bool {
	return t.Bucket() == BucketActive
}

// SubtaskProgress returns the number of completed subtasks and the total
func (t Task) SubtaskProgress() (done, total int) {
	for _, s := range t.Subtasks {
		if s.Done() {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// FindSubtask returns the index of the subtask with the given ID, or -1
func (t Task) FindSubtask(id uuid.UUID) int {
	for i, s := range t.Subtasks {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy that shares no mutable state with t
func (t Task) Clone() Task {
	c := t
	c.DueDate = clonePtr(t.DueDate)
	c.CompletedAt = clonePtr(t.CompletedAt)
	c.DeletedAt = clonePtr(t.DeletedAt)
	if t.Subtasks != nil {
		c.Subtasks = make([]Subtask, len(t.Subtasks))
		for i, s := range t.Subtasks {
			s.CompletedAt = clonePtr(s.CompletedAt)
			c.Subtasks[i] = s
		}
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
